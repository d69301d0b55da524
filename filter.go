package extent

// Filter restricts the part of a dataset a bound computation looks at.
// The zero value (and a nil *Filter) selects everything.
type Filter struct {
	// Visible lists the keys of the series (or rows) to consider.
	// A nil Visible considers all series, an empty one none. Keys not
	// present in the dataset are ignored.
	Visible []string

	// Window restricts XY datasets to the items whose x-value lies in
	// Window. Items with a NaN x-value are outside every window.
	Window *Range
}

// keep is the compiled form of a Filter.
type keep struct {
	visible map[string]bool // nil: all series visible
	window  *Range
}

func (f *Filter) compile() keep {
	var k keep
	if f == nil {
		return k
	}
	if f.Visible != nil {
		k.visible = make(map[string]bool, len(f.Visible))
		for _, key := range f.Visible {
			k.visible[key] = true
		}
	}
	k.window = f.Window
	return k
}

func (k keep) series(key string) bool {
	return k.visible == nil || k.visible[key]
}

func (k keep) x(x float64) bool {
	return k.window == nil || k.window.Contains(x)
}
