package jadwal

// DedupeInstructors keeps the first occurrence of every lecturer name, in order.
// Names shorter than minLen are dropped as extraction noise.
func DedupeInstructors(in []Instructor, minLen int) []Instructor {
	seen := make(map[string]bool, len(in))
	unique := make([]Instructor, 0, len(in))

	for _, ins := range in {
		if !validInstructorName(ins.Name, minLen) || seen[ins.Name] {
			continue
		}
		seen[ins.Name] = true
		unique = append(unique, ins)
	}

	return unique
}
