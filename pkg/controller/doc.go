// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - CORS: go-chi/cors configured for the LIFF form and the JSON API.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithTimeout: Bounds handler execution time.
//
// Provided helpers:
//   - PprofRouter: Returns a chi router exposing net/http/pprof handlers.
package controller
