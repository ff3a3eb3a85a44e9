package rest

import (
	"fmt"
	"html/template"
	"io"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type pageSquare struct {
	Row, Col int
	Mark     entity.Mark
}

type pagePlayer struct {
	Mark   entity.Mark
	Name   string
	Active bool
}

type pageData struct {
	Rows     [][]pageSquare
	Players  []pagePlayer
	Turns    []entity.Turn
	Finished bool
	Winner   string
	IsDraw   bool
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Tic-Tac-Toe</title>
<style>
body { font-family: sans-serif; display: flex; gap: 3rem; justify-content: center; }
#players { list-style: none; display: flex; gap: 1rem; padding: 0; }
#players li { border: 2px solid transparent; padding: 0.5rem; }
#players li.active { border-color: #f6e35a; }
#game-board { list-style: none; padding: 0; }
#game-board ol { list-style: none; display: flex; gap: 0.5rem; padding: 0; margin: 0 0 0.5rem; }
#game-board button { width: 5rem; height: 5rem; font-size: 2.5rem; }
#game-over { border: 2px solid #333; padding: 1rem; text-align: center; }
</style>
</head>
<body>
<main id="game-container">
  <ol id="players">
  {{- range .Players }}
    <li{{ if .Active }} class="active"{{ end }}>
      <form method="post" action="/players/{{ .Mark }}">
        <input type="text" name="name" value="{{ .Name }}" required>
        <span class="player-symbol">{{ .Mark }}</span>
        <button type="submit">Save</button>
      </form>
    </li>
  {{- end }}
  </ol>
  {{- if .Finished }}
  <div id="game-over">
    <h2>Game Over!</h2>
    {{- if .IsDraw }}
    <p>It's a draw</p>
    {{- else }}
    <p>{{ .Winner }} Won!</p>
    {{- end }}
    <form method="post" action="/restart"><button type="submit">Rematch</button></form>
  </div>
  {{- end }}
  <ol id="game-board">
  {{- range .Rows }}
    <li><ol>
    {{- range . }}
      <li><form method="post" action="/squares">
        <input type="hidden" name="row" value="{{ .Row }}">
        <input type="hidden" name="col" value="{{ .Col }}">
        <button type="submit"{{ if or .Mark $.Finished }} disabled{{ end }}>{{ .Mark }}</button>
      </form></li>
    {{- end }}
    </ol></li>
  {{- end }}
  </ol>
</main>
<ol id="log">
{{- range .Turns }}
  <li>{{ .Player }} selected {{ .Square.Row }},{{ .Square.Col }}</li>
{{- end }}
</ol>
</body>
</html>
`))

func newPageData(state entity.GameState) pageData {
	data := pageData{
		Rows: make([][]pageSquare, entity.BoardSize),
		Players: []pagePlayer{
			{Mark: entity.PlayerX, Name: state.Players.X, Active: state.ActivePlayer == entity.PlayerX},
			{Mark: entity.PlayerO, Name: state.Players.O, Active: state.ActivePlayer == entity.PlayerO},
		},
		Turns:    state.Turns,
		Finished: state.Status != entity.StatusOngoing,
		Winner:   state.Winner,
		IsDraw:   state.IsDraw,
	}

	for row := range state.Board {
		data.Rows[row] = make([]pageSquare, entity.BoardSize)
		for col, mark := range state.Board[row] {
			data.Rows[row][col] = pageSquare{Row: row, Col: col, Mark: mark}
		}
	}

	return data
}

func renderPage(w io.Writer, state entity.GameState) error {
	if err := pageTemplate.Execute(w, newPageData(state)); err != nil {
		return fmt.Errorf("failed to execute page template: %w", err)
	}

	return nil
}
