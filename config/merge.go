package config

// mergeMaps deep-merges overlay onto base. Nested mappings merge key
// by key; scalars and lists replace wholesale, so an overlay that sets
// a link list owns the whole list.
func mergeMaps(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, ov := range overlay {
		if bm, ok := out[k].(map[string]any); ok {
			if om, ok := ov.(map[string]any); ok {
				out[k] = mergeMaps(bm, om)
				continue
			}
		}
		out[k] = ov
	}
	return out
}
