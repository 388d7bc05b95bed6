package debugui

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/microecs/ecs"
)

// NewComponentInspector creates an inspector window.
func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{cache: newReflectionCache()}
}

// Render draws the inspector for the given entity. Edits write straight into
// the entity's components; the store hands out the owning pointers, so no
// write-back step is needed.
func (ci *ComponentInspector) Render(e *ecs.Entity) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if e == nil {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Components: %d", e.Len()))
	imgui.Separator()

	type entry struct {
		typ  reflect.Type
		comp ecs.Component
	}
	entries := make([]entry, 0, e.Len())
	for t, c := range e.All() {
		entries = append(entries, entry{typ: t, comp: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].typ.String() < entries[j].typ.String()
	})

	for _, en := range entries {
		if imgui.TreeNodeStr(en.typ.String()) {
			ci.renderComponent(en.comp)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *ComponentInspector) renderComponent(comp ecs.Component) {
	val := reflect.ValueOf(comp).Elem()

	if val.Kind() != reflect.Struct {
		ci.renderValue("value", val)
		return
	}

	for _, field := range ci.cache.fields(val.Type()) {
		fieldVal := val.Field(field.index)
		if field.isPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		ci.renderValue(field.name, fieldVal)
	}
}

// renderValue draws one addressable value with an edit widget where the kind
// supports it.
func (ci *ComponentInspector) renderValue(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, field := range ci.cache.fields(val.Type()) {
				nested := val.Field(field.index)
				if field.isPointer {
					if nested.IsNil() {
						imgui.Text(fmt.Sprintf("%s: nil", field.name))
						continue
					}
					nested = nested.Elem()
				}
				ci.renderValue(field.name, nested)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
