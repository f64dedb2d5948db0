package datagrid

// Row is one data row as seen by the header: a map from field name to
// cell value. The header never mutates rows; it only reads the key
// field when building the select-all set.
type Row map[string]any

// RowGetter returns the row at the given index.
// Supplied by the grid owner; indices are 0..rowCount-1.
type RowGetter func(index int) Row

// KeySet is a set of row-key values for selection tracking.
type KeySet map[any]struct{}

// NewKeySet creates an empty key set.
func NewKeySet() KeySet {
	return make(KeySet)
}

// Add inserts a key into the set.
func (s KeySet) Add(key any) {
	s[key] = struct{}{}
}

// Contains reports whether a key is in the set.
func (s KeySet) Contains(key any) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys in the set.
func (s KeySet) Len() int {
	return len(s)
}

// SelectAllKeys builds the set of every row's key value by scanning
// indices 0..rowCount-1 through the getter and reading keyField from
// each row. Rows missing the key field are skipped.
func SelectAllKeys(rowCount int, getter RowGetter, keyField string) KeySet {
	set := make(KeySet, rowCount)
	if getter == nil {
		return set
	}
	for i := 0; i < rowCount; i++ {
		row := getter(i)
		if row == nil {
			continue
		}
		if key, ok := row[keyField]; ok {
			set.Add(key)
		}
	}
	return set
}
