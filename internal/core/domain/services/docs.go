// Package services holds the domain services of the pickup-request pipeline that
// do not belong to a single aggregate.
//
//   - StoreManagerPicker: store -> department -> manager picking over a directory.Index,
//     with the origin store blocked on the destination side
//   - RequestEncoder: wizard.State plus two normalized addresses -> carrier.Payload
package services
