// Package diff compares two resolved Site Configuration Records at the
// level of the generator contract, so a change report names the keys
// the external tool will actually see differ.
package diff

import (
	"github.com/plumekit/plume/config/site"
	"github.com/plumekit/plume/settings"
)

type Change struct {
	Key string
	Old string
	New string
}

// Summary describes the result of comparing two records.
type Summary struct {
	Changes []Change
}

func (s Summary) Empty() bool {
	return len(s.Changes) == 0
}

// ChangedKeys lists the contract keys that differ, in contract order.
func (s Summary) ChangedKeys() []string {
	keys := make([]string, 0, len(s.Changes))
	for _, c := range s.Changes {
		keys = append(keys, c.Key)
	}
	return keys
}

// Compare walks the contract of both records in canonical order.
// Values compare by their rendered literal, which already normalizes
// nil and empty pair lists.
func Compare(old, next *site.Record) Summary {
	oldSet := settings.Build(old)
	nextSet := settings.Build(next)

	summary := Summary{}
	for i, o := range oldSet {
		n := nextSet[i]
		oldLit := settings.Literal(o.Value)
		newLit := settings.Literal(n.Value)
		if oldLit != newLit {
			summary.Changes = append(summary.Changes, Change{
				Key: o.Key,
				Old: oldLit,
				New: newLit,
			})
		}
	}
	return summary
}
