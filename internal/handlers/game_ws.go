package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jefin08/Sudoku-2.0/internal/sudoku"
)

var commandNargs = map[string]int{
	"g": 0, // get state
	"s": 3, // set r c v
	"e": 2, // erase r c
	"k": 0, // check
	"h": 0, // hint
	"a": 0, // solve
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int", i+1)
		}
		out[i] = n
	}
	return out, nil
}

func executeCommand(game *sudoku.GameState, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return fmt.Errorf("empty command")
	}

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "s":
		args, err := parseInts(parts[1:])
		if err != nil {
			return err
		}
		return game.SetCell(args[0], args[1], args[2])
	case "e":
		args, err := parseInts(parts[1:])
		if err != nil {
			return err
		}
		return game.SetCell(args[0], args[1], 0)
	case "k":
		game.Check()
		return nil
	case "h":
		game.Hint()
		return nil
	case "a":
		_, _, err := game.Solve()
		return err
	}
	return fmt.Errorf("invalid command")
}

// ConnectWS serves the live game channel. Each text message carries
// newline-separated commands; after every message the session is persisted
// and sent back as JSON.
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("unable to upgrade: ", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.log.Warn("abnormal ws break: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		text := strings.TrimSpace(string(message))
		g.log.Debug("\t> ", text)
		for _, cmd := range strings.Split(text, "\n") {
			if err := executeCommand(game, cmd); err != nil {
				g.log.Error("unable to process command: ", err)
				return
			}
			if game.Won && session.EndedAt == nil {
				now := time.Now().UTC()
				session.EndedAt = &now
				break
			}
		}

		if !g.updateSession(w, r, session, game) {
			return
		}

		dto := NewGameSessionDTO(
			session.GameSessionID, session.StartedAt, session.EndedAt, game,
		)
		if err := c.WriteJSON(dto); err != nil {
			g.log.Error("unable to write json: ", err)
			break
		}
	}
}
