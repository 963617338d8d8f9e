// Package memory implements the domain repositories over in-process
// collections. Every repository serializes access with a mutex so
// find-and-replace upserts stay atomic under concurrent handlers, and
// returns deep copies so callers never alias stored records.
package memory

import "time"

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
