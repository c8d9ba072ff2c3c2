package jsonpath

// execute runs a compiled selector chain against data, threading the
// working set of matches through each selector in turn. Each selector only
// ever sees the matches its predecessor produced, never the original root
// value, which is what lets selectors compose left to right the way the
// query string reads.
func execute(selectors []selector, data interface{}) []interface{} {
	if len(selectors) == 0 {
		return nil
	}

	matches := []interface{}{data}

	for _, sel := range selectors {
		matches = sel.apply(matches)
		if len(matches) == 0 {
			return nil
		}
	}

	return matches
}
