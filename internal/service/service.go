// Package service holds the operations handlers call.
//
// Handlers decode requests and render responses; services run the domain
// logic. Validation is the only domain logic this service has.
package service
