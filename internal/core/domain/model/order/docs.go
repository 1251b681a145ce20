// Package order contains the Order aggregate and its owned Package entities.
//
// An order is created for an existing customer and owns an ordered collection
// of packages fixed at creation time; no package exists independently of an
// order. Orders start in the PENDING status and packages in AWAITING_PICKUP;
// status progression beyond the initial values is out of scope for this core,
// but the fields and their initial values are part of the contract.
package order
