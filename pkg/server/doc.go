// Package server provides the HTTP server for the artrights API.
//
// It uses gorilla/mux for routing and gorilla/handlers for request logging,
// panic recovery and optional CORS.
//
// # Server Setup
//
//	srv := server.NewServer(services, cfg, images, "0.0.0.0", "8080")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - Services: the domain services every endpoint calls
//   - Config: runtime configuration (page sizes, CORS)
//   - Images: object store for artwork images, nil when disabled
//
// Requests may name the acting user in the X-Artrights-User header; see
// the middleware subpackage.
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - /users, /projects, /artworks, /contacts, /media, /tasks
//   - /categories/{kind} for kind project, artwork, contact or work-status
//   - /artworks/{id}/rights-holders, /artworks/{id}/rights-summary
//   - /rights-holders/{id} and /rights-holders/{id}/media/{mediaId}
//   - /status
package server
