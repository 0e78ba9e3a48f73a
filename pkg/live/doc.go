// Package live pushes re-rendered HTML fragments to browsers over
// WebSocket.
//
// A Hub tracks connected clients. Broadcast sends a Fragment, a rendered
// piece of markup addressed to an element ID, to every client; the
// ClientScript served with the page swaps it into the DOM. Run renders
// and broadcasts a fragment on a fixed interval:
//
//	hub := live.NewHub(live.WithLogger(logger))
//	r.Get("/live", hub.HandleWebSocket)
//	go hub.Run(ctx, time.Second, func(t time.Time) (live.Fragment, error) {
//	    html, err := site.Clock(t).Render(nil)
//	    return live.Fragment{Target: "clock", HTML: html}, err
//	})
package live
