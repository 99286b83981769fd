// Package entity: per-item property layer.
//
// Properties attach to individual items, independent of the cells they
// appear in, and never touch the canonical table or the derived-view
// caches — assignment therefore works on static entities too.

package entity

// AssignProperties merges props into the item property table. For items
// already carrying properties the incoming set overlays the existing one
// key-wise; other items' entries are kept untouched. Side effect only.
func (e *Entity) AssignProperties(props map[string]map[string]any) {
	if len(props) == 0 {
		return
	}
	if e.props == nil {
		e.props = make(map[string]map[string]any, len(props))
	}
	for item, kv := range props {
		existing, ok := e.props[item]
		if !ok {
			existing = make(map[string]any, len(kv))
			e.props[item] = existing
		}
		for name, value := range kv {
			existing[name] = value
		}
	}
}

// Properties returns a copy of the property set attached to item, or nil
// when the item carries none.
func (e *Entity) Properties(item string) map[string]any {
	kv, ok := e.props[item]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(kv))
	for name, value := range kv {
		out[name] = value
	}

	return out
}

// adoptProperties carries src item properties into a derived entity for
// every label present in any of its levels. Properties already present on
// the receiver (construction overrides) win key-wise.
func (e *Entity) adoptProperties(src map[string]map[string]any) {
	if len(src) == 0 {
		return
	}
	kept := make(map[string]struct{})
	for _, li := range e.levels {
		for _, label := range li.order {
			kept[label] = struct{}{}
		}
	}
	for item, kv := range src {
		if _, ok := kept[item]; !ok {
			continue
		}
		merged := make(map[string]any, len(kv))
		for name, value := range kv {
			merged[name] = value
		}
		for name, value := range e.props[item] {
			merged[name] = value
		}
		if e.props == nil {
			e.props = make(map[string]map[string]any)
		}
		e.props[item] = merged
	}
}

// clonePropertyMap deep-copies a property table (one map level down;
// property values themselves are shared).
func clonePropertyMap(src map[string]map[string]any) map[string]map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]map[string]any, len(src))
	for item, kv := range src {
		inner := make(map[string]any, len(kv))
		for name, value := range kv {
			inner[name] = value
		}
		out[item] = inner
	}

	return out
}
