package websocket

import (
	"github.com/labstack/echo/v4"
)

// Handler upgrades a "/ws" request into a feed connection.
func (s *Server) Handler(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	observer, _ := c.Get("caller").(string)

	client := NewClient(conn, observer)
	s.hub.Register(client)
	client.Run()

	defer s.hub.Unregister(client)

	// Hold the handler until the connection closes.
	<-client.Context().Done()

	return nil
}
