package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/microecs/ecs"
)

type entityInfo struct {
	entity         *ecs.Entity
	index          int
	componentTypes []string
	componentCount int
}

type entityBrowserCache struct {
	entities      []entityInfo
	lastPopCount  int
	lastCompCount int
	sortColumn    int
	sortAscending bool
}

// NewEntityBrowser creates a browser paging at maxEntitiesPerPage rows.
func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		cache: &entityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// Selected returns the entity picked in the browser, or nil.
func (eb *EntityBrowser) Selected() *ecs.Entity {
	return eb.selected
}

// Render draws the browser window over the given entity slice. The slice
// index is the entity's displayed identity; entities hold none of their own.
func (eb *EntityBrowser) Render(entities []*ecs.Entity) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(entities)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := eb.filteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			info := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == info.entity
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.index), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = info.entity
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.componentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.componentCount))
		}

		imgui.EndTable()
	}

	filtered := eb.filteredEntities()

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// rebuildCacheIfNeeded refreshes the row cache when the population or the
// total component count changes. Component renames inside an unchanged
// population are rare enough not to track.
func (eb *EntityBrowser) rebuildCacheIfNeeded(entities []*ecs.Entity) {
	compCount := 0
	for _, e := range entities {
		compCount += e.Len()
	}

	if eb.cache.lastPopCount != len(entities) || eb.cache.lastCompCount != compCount {
		eb.cache.entities = nil
		eb.cache.lastPopCount = len(entities)
		eb.cache.lastCompCount = compCount
	}

	if eb.cache.entities == nil {
		eb.rebuildCache(entities)
	}
}

func (eb *EntityBrowser) rebuildCache(entities []*ecs.Entity) {
	eb.cache.entities = make([]entityInfo, 0, len(entities))

	stillPresent := false
	for i, e := range entities {
		componentTypes := make([]string, 0, e.Len())
		for t := range e.All() {
			componentTypes = append(componentTypes, t.String())
		}
		sort.Strings(componentTypes)

		eb.cache.entities = append(eb.cache.entities, entityInfo{
			entity:         e,
			index:          i,
			componentTypes: componentTypes,
			componentCount: len(componentTypes),
		})

		if e == eb.selected {
			stillPresent = true
		}
	}

	if !stillPresent {
		eb.selected = nil
	}

	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.Slice(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 1:
			less = strings.Join(a.componentTypes, ",") < strings.Join(b.componentTypes, ",")
		case 2:
			less = a.componentCount < b.componentCount
		default:
			less = a.index < b.index
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) filteredEntities() []entityInfo {
	if eb.filterText == "" {
		return eb.cache.entities
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]entityInfo, 0, len(eb.cache.entities))

	for _, info := range eb.cache.entities {
		idStr := fmt.Sprintf("%d", info.index)
		componentsStr := strings.ToLower(strings.Join(info.componentTypes, " "))

		if !strings.Contains(idStr, filterLower) && !strings.Contains(componentsStr, filterLower) {
			continue
		}

		filtered = append(filtered, info)
	}

	return filtered
}
