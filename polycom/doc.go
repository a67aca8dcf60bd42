// Package polycom builds Polycom provisioning documents (<ext>.cfg files).
//
// A document is a polycomConfig root holding one flat element per settings
// group. Every setting is an attribute whose key carries its full dotted
// path (reg.1.auth.userId, attendant.resourceList.2.label, ...). The phone
// loader is sensitive to the exact bytes, so elements and attributes keep
// insertion order and the prolog is fixed.
package polycom
