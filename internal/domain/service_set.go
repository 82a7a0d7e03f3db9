package domain

import "sort"

// ServiceSet holds distinct service names. Names are compared exactly, so
// "GitHub" and "github" are different entries.
type ServiceSet map[string]struct{}

func NewServiceSet(names ...string) ServiceSet {
	set := make(ServiceSet, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

func (s ServiceSet) Add(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

func (s ServiceSet) Remove(name string) bool {
	if _, ok := s[name]; !ok {
		return false
	}
	delete(s, name)
	return true
}

func (s ServiceSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

func (s ServiceSet) Len() int {
	return len(s)
}

func (s ServiceSet) Clone() ServiceSet {
	clone := make(ServiceSet, len(s))
	for name := range s {
		clone[name] = struct{}{}
	}
	return clone
}

// Names returns the entries sorted for stable display. The order carries no
// meaning.
func (s ServiceSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
