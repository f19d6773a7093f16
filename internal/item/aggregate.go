package item

import "time"

// buildViews assembles item views for a batch of items from approved bookings
// partitioned by item id. Grouping happens once per batch, never per item.
//
// Last/Next are populated only when the viewer owns the item; comments are
// attached for every viewer.
func buildViews(items []*Item, approved map[string][]BookingRef, comments map[string][]Comment, viewerID string, now time.Time) []*View {
	views := make([]*View, 0, len(items))
	for _, it := range items {
		v := &View{
			Item:     *it,
			Comments: comments[it.ID],
		}
		if v.Comments == nil {
			v.Comments = []Comment{}
		}
		if viewerID == it.OwnerID {
			v.Last, v.Next = lastAndNext(approved[it.ID], now)
		}
		views = append(views, v)
	}
	return views
}

// lastAndNext selects from an item's approved bookings:
//   - last: greatest start among bookings with start before now. Selection is
//     by start, not end, so an ongoing long booking still counts as last.
//   - next: smallest start among bookings with start after now.
func lastAndNext(bookings []BookingRef, now time.Time) (last, next *BookingRef) {
	for i := range bookings {
		b := &bookings[i]
		switch {
		case b.Start.Before(now):
			if last == nil || b.Start.After(last.Start) {
				last = b
			}
		case b.Start.After(now):
			if next == nil || b.Start.Before(next.Start) {
				next = b
			}
		}
	}
	return last, next
}
