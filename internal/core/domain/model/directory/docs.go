// Package directory models the store directory the pickup wizard picks from.
//
// A Store owns an ordered list of departments, each with an ordered list of
// managers. Index is built once per wizard flow from the directory service
// response and answers every store/department/manager lookup afterwards,
// so grouping never happens again while a picker is open.
package directory
