// Package pnode defines the data model of the monitor: the identity of a
// pNode, ordered sets of pNodes, membership snapshots, and the diff between
// two snapshots.
//
// A pNode is identified by the network address (host:port) under which it is
// registered with the status endpoint. Sets preserve the order in which
// identities were discovered, because reports list nodes in discovery order
// and truncate long lists; equality between sets is nevertheless pure set
// equality, irrespective of order.
package pnode
