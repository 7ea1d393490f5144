// Package api contains the HTTP handlers, request/response models, and
// error-to-status mapping for the REST surface. Handlers validate input,
// invoke a service, and translate service failures into status codes and
// structured bodies without leaking internal error detail.
package api
