package catalog

// Merge composes tables ordered from strongest to weakest. Branches present in
// several tables merge recursively; for leaves the strongest table wins.
func Merge(tables ...*Table) *Table {
	if len(tables) == 0 {
		return New(nil)
	}

	merged := map[string]any{}
	for i := len(tables) - 1; i >= 0; i-- {
		if tables[i] == nil {
			continue
		}
		merged = mergeMaps(tables[i].root, merged)
	}
	return &Table{root: merged}
}

func mergeMaps(strong, weak map[string]any) map[string]any {
	result := make(map[string]any, len(strong)+len(weak))
	for key, value := range weak {
		result[key] = clone(value)
	}
	for key, value := range strong {
		strongMap, strongIsMap := value.(map[string]any)
		weakMap, weakIsMap := result[key].(map[string]any)
		if strongIsMap && weakIsMap {
			result[key] = mergeMaps(strongMap, weakMap)
			continue
		}
		result[key] = clone(value)
	}
	return result
}
