package urlspan

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMouseFromEvent(t *testing.T) {
	area := image.Rect(2, 1, 12, 6) // 10x5 text area with a border

	tests := []struct {
		name    string
		x, y    int
		buttons tcell.ButtonMask
		mods    tcell.ModMask
		want    Mouse
	}{
		{"top left", 2, 1, tcell.ButtonNone, tcell.ModNone, Mouse{InsideTextArea: true, Point: Point{Row: 0, Col: 0}}},
		{"inside", 7, 3, tcell.ButtonNone, tcell.ModCtrl, Mouse{InsideTextArea: true, Point: Point{Row: 2, Col: 5}}},
		{"pressed", 11, 5, tcell.ButtonPrimary, tcell.ModNone, Mouse{InsideTextArea: true, Point: Point{Row: 4, Col: 9}, Buttons: tcell.ButtonPrimary}},
		{"border", 1, 1, tcell.ButtonNone, tcell.ModNone, Mouse{Point: Point{Row: 0, Col: -1}}},
		{"past right edge", 12, 3, tcell.ButtonNone, tcell.ModShift, Mouse{Point: Point{Row: 2, Col: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventMouse(tt.x, tt.y, tt.buttons, tt.mods)

			got, mods := MouseFromEvent(ev, area)
			if got != tt.want {
				t.Errorf("MouseFromEvent() = %+v, want %+v", got, tt.want)
			}
			if mods != tt.mods {
				t.Errorf("mods = %v, want %v", mods, tt.mods)
			}
		})
	}
}
