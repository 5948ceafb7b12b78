/*
Copyright 2026 The containerimage-go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package image

// Diff is the result of comparing two Sets: which images were added,
// removed, updated, or left unchanged between them.
type Diff struct {
	Added   *Set
	Removed *Set
	Updated *Set
	Common  *Set
}

type setMembership struct {
	current  *Image
	previous *Image
}

// Diff compares s (the current set) against previous, grouping images by
// their Name() - registry and path, ignoring tag/digest - rather than by
// full reference. An image present in both sets is Common if its
// Identifier() (tag or digest) matches across both, Updated otherwise; an
// image present in only one set is Added or Removed accordingly.
func (s *Set) Diff(previous *Set) (Diff, error) {
	diff := Diff{Added: NewSet(), Removed: NewSet(), Updated: NewSet(), Common: NewSet()}

	byName := map[string]*setMembership{}
	order := []string{}

	for _, img := range s.images {
		name, err := img.ref.Name()
		if err != nil {
			return Diff{}, err
		}
		m, ok := byName[name]
		if !ok {
			m = &setMembership{}
			byName[name] = m
			order = append(order, name)
		}
		m.current = img
	}
	for _, img := range previous.images {
		name, err := img.ref.Name()
		if err != nil {
			return Diff{}, err
		}
		m, ok := byName[name]
		if !ok {
			m = &setMembership{}
			byName[name] = m
			order = append(order, name)
		}
		m.previous = img
	}

	for _, name := range order {
		m := byName[name]
		switch {
		case m.current != nil && m.previous != nil:
			curID, err := m.current.ref.Identifier()
			if err != nil {
				return Diff{}, err
			}
			prevID, err := m.previous.ref.Identifier()
			if err != nil {
				return Diff{}, err
			}
			if curID == prevID {
				diff.Common.Append(m.current)
			} else {
				diff.Updated.Append(m.current)
			}
		case m.current != nil:
			diff.Added.Append(m.current)
		case m.previous != nil:
			diff.Removed.Append(m.previous)
		}
	}
	return diff, nil
}
