//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/danielgatis/go-urlspan"
)

// Global screen registry
var screens = make(map[int]*urlspan.Screen)
var nextScreenID = 1

func main() {
	js.Global().Set("URLSpan", js.ValueOf(map[string]interface{}{
		// Screen lifecycle
		"create":  js.FuncOf(createScreen),
		"destroy": js.FuncOf(destroyScreen),

		// Input processing
		"write":       js.FuncOf(write),
		"writeString": js.FuncOf(writeString),
		"resize":      js.FuncOf(resize),

		// Content
		"getString":    js.FuncOf(getString),
		"snapshotJSON": js.FuncOf(snapshotJSON),

		// URLs
		"scan":   js.FuncOf(scan),
		"findAt": js.FuncOf(findAt),
	}))

	// Keep the program running
	select {}
}

func createScreen(_ js.Value, args []js.Value) interface{} {
	rows := urlspan.DEFAULT_ROWS
	cols := urlspan.DEFAULT_COLS
	if len(args) >= 2 {
		rows = args[0].Int()
		cols = args[1].Int()
	}

	id := nextScreenID
	nextScreenID++
	screens[id] = urlspan.NewScreen(urlspan.WithSize(rows, cols))
	return id
}

func destroyScreen(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	delete(screens, args[0].Int())
	return nil
}

func getScreen(args []js.Value) *urlspan.Screen {
	if len(args) < 1 {
		return nil
	}
	return screens[args[0].Int()]
}

func write(_ js.Value, args []js.Value) interface{} {
	screen := getScreen(args)
	if screen == nil || len(args) < 2 {
		return -1
	}

	// Get Uint8Array from JS
	data := make([]byte, args[1].Length())
	js.CopyBytesToGo(data, args[1])

	n, _ := screen.Write(data)
	return n
}

func writeString(_ js.Value, args []js.Value) interface{} {
	screen := getScreen(args)
	if screen == nil || len(args) < 2 {
		return -1
	}
	n, _ := screen.WriteString(args[1].String())
	return n
}

func resize(_ js.Value, args []js.Value) interface{} {
	screen := getScreen(args)
	if screen == nil || len(args) < 3 {
		return nil
	}
	screen.Resize(args[1].Int(), args[2].Int())
	return nil
}

func getString(_ js.Value, args []js.Value) interface{} {
	screen := getScreen(args)
	if screen == nil {
		return ""
	}
	return screen.String()
}

func snapshotJSON(_ js.Value, args []js.Value) interface{} {
	screen := getScreen(args)
	if screen == nil {
		return nil
	}
	data, err := json.Marshal(screen.Snapshot())
	if err != nil {
		return nil
	}
	return string(data)
}

func scan(_ js.Value, args []js.Value) interface{} {
	screen := getScreen(args)
	if screen == nil {
		return nil
	}

	tracker := screen.Scan()
	result := make([]interface{}, 0, tracker.Len())
	for _, u := range tracker.URLs() {
		result = append(result, urlToJS(screen, u))
	}
	return result
}

// findAt(id, row, col) returns the URL covering the cell or null.
func findAt(_ js.Value, args []js.Value) interface{} {
	screen := getScreen(args)
	if screen == nil || len(args) < 3 {
		return nil
	}

	u, ok := screen.Scan().FindAt(urlspan.Point{Row: args[1].Int(), Col: args[2].Int()})
	if !ok {
		return nil
	}
	return urlToJS(screen, u)
}

func urlToJS(screen *urlspan.Screen, u urlspan.URL) map[string]interface{} {
	start, end := u.Start(), u.End()
	return map[string]interface{}{
		"startRow": start.Row,
		"startCol": start.Col,
		"endRow":   end.Row,
		"endCol":   end.Col,
		"text":     screen.Text(u),
	}
}
