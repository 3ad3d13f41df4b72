// Package preview serves a live page over HTTP.
//
// The page is rendered once into an in-memory document. Its named cells can
// be read and replaced through a small JSON API; every change re-renders the
// body and pushes it to connected browsers over a WebSocket.
//
// Routes:
//
//	GET  /                  full HTML page with the live-update client
//	GET  /ws                WebSocket stream of body HTML
//	GET  /api/state         all named cells as a JSON object
//	GET  /api/state/{name}  one cell
//	PUT  /api/state/{name}  replace a cell with the JSON request body
//	GET  /metrics           Prometheus metrics (unless disabled)
//	GET  /healthz           liveness probe
package preview
