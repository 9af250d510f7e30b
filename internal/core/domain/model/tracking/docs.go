// Package tracking models the delivery journey of a confirmed shipment as a
// forward-only status machine (picked_up through delivered) plus an
// append-only history of tracking events.
package tracking
