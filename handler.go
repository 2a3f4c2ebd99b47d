package urlspan

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// tabWidth is the distance between the fixed tab stops.
const tabWidth = 8

// Input writes a character at the cursor and advances it. Wide characters take
// two cells; one that does not fit in the last column leaves a leading spacer
// there and wraps.
func (s *Screen) Input(r rune) {
	s.mu.Lock()
	defer s.mu.Unlock()

	width := runeWidth(r)
	if width == 0 {
		return
	}

	if s.cursor.Col+width > s.cols {
		if s.modes&ModeLineWrap == 0 {
			if width == 2 {
				return
			}
			s.cursor.Col = s.cols - 1
		} else {
			if width == 2 && s.cursor.Col == s.cols-1 {
				if spacer := s.active.Cell(s.cursor.Row, s.cursor.Col); spacer != nil {
					spacer.Reset()
					spacer.Fg = s.template.Fg
					spacer.Bg = s.template.Bg
					spacer.SetFlag(CellFlagLeadingWideCharSpacer)
				}
			}
			s.active.SetWrapped(s.cursor.Row, true)
			s.cursor.Col = 0
			s.cursor.Row++
			s.scrollIfNeeded()
		}
	}

	if s.modes&ModeInsert != 0 {
		s.active.InsertBlanks(s.cursor.Row, s.cursor.Col, width)
	}

	cell := s.template
	if width == 2 {
		cell.SetFlag(CellFlagWideChar)
	}
	cell.Char = r
	s.active.SetCell(s.cursor.Row, s.cursor.Col, cell)
	s.cursor.Col++

	if width == 2 && s.cursor.Col < s.cols {
		spacer := NewCell()
		spacer.Fg = s.template.Fg
		spacer.Bg = s.template.Bg
		spacer.SetFlag(CellFlagWideCharSpacer)
		s.active.SetCell(s.cursor.Row, s.cursor.Col, spacer)
		s.cursor.Col++
	}
}

// LineFeed moves the cursor down one row, scrolling at the bottom of the
// scroll region. The current row no longer counts as soft wrapped.
func (s *Screen) LineFeed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active.SetWrapped(s.cursor.Row, false)

	if s.modes&ModeLineFeedNewLine != 0 {
		s.cursor.Col = 0
	}

	if s.cursor.Row == s.scrollBottom-1 {
		s.active.ScrollUp(s.scrollTop, s.scrollBottom, 1)
	} else if s.cursor.Row < s.rows-1 {
		s.cursor.Row++
	}
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Col = 0
}

// Backspace moves the cursor one column left.
func (s *Screen) Backspace() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor.Col = clamp(s.cursor.Col-1, 0, s.cols-1)
}

// Tab moves the cursor forward n tab stops.
func (s *Screen) Tab(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i++ {
		next := (s.cursor.Col/tabWidth + 1) * tabWidth
		s.cursor.Col = min(next, s.cols-1)
	}
}

// MoveForwardTabs moves the cursor forward n tab stops.
func (s *Screen) MoveForwardTabs(n int) {
	s.Tab(n)
}

// MoveBackwardTabs moves the cursor back n tab stops.
func (s *Screen) MoveBackwardTabs(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n && s.cursor.Col > 0; i++ {
		s.cursor.Col = ((s.cursor.Col - 1) / tabWidth) * tabWidth
	}
}

// Goto moves the cursor to (row, col), relative to the scroll region in origin mode.
func (s *Screen) Goto(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor.Row = clamp(s.effectiveRow(row), 0, s.rows-1)
	s.cursor.Col = clamp(col, 0, s.cols-1)
}

// GotoCol moves the cursor to col on the current row.
func (s *Screen) GotoCol(col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Col = clamp(col, 0, s.cols-1)
}

// GotoLine moves the cursor to row, keeping the column.
func (s *Screen) GotoLine(row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Row = clamp(s.effectiveRow(row), 0, s.rows-1)
}

// MoveUp moves the cursor up n rows.
func (s *Screen) MoveUp(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Row = clamp(s.cursor.Row-n, 0, s.rows-1)
}

// MoveDown moves the cursor down n rows.
func (s *Screen) MoveDown(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Row = clamp(s.cursor.Row+n, 0, s.rows-1)
}

// MoveForward moves the cursor right n columns.
func (s *Screen) MoveForward(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Col = clamp(s.cursor.Col+n, 0, s.cols-1)
}

// MoveBackward moves the cursor left n columns.
func (s *Screen) MoveBackward(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Col = clamp(s.cursor.Col-n, 0, s.cols-1)
}

// MoveUpCr moves the cursor up n rows and to column 0.
func (s *Screen) MoveUpCr(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Row = clamp(s.cursor.Row-n, 0, s.rows-1)
	s.cursor.Col = 0
}

// MoveDownCr moves the cursor down n rows and to column 0.
func (s *Screen) MoveDownCr(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.Row = clamp(s.cursor.Row+n, 0, s.rows-1)
	s.cursor.Col = 0
}

// ClearLine erases part or all of the current row.
func (s *Screen) ClearLine(mode ansicode.LineClearMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch mode {
	case ansicode.LineClearModeRight:
		s.active.ClearRowRange(s.cursor.Row, s.cursor.Col, s.cols)
	case ansicode.LineClearModeLeft:
		s.active.ClearRowRange(s.cursor.Row, 0, s.cursor.Col+1)
	case ansicode.LineClearModeAll:
		s.active.ClearRowRange(s.cursor.Row, 0, s.cols)
	}
}

// ClearScreen erases part or all of the screen.
func (s *Screen) ClearScreen(mode ansicode.ClearMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch mode {
	case ansicode.ClearModeBelow:
		s.active.ClearRowRange(s.cursor.Row, s.cursor.Col, s.cols)
		for row := s.cursor.Row + 1; row < s.rows; row++ {
			s.active.ClearRow(row)
		}
	case ansicode.ClearModeAbove:
		for row := 0; row < s.cursor.Row; row++ {
			s.active.ClearRow(row)
		}
		s.active.ClearRowRange(s.cursor.Row, 0, s.cursor.Col+1)
	case ansicode.ClearModeAll, ansicode.ClearModeSaved:
		s.active.ClearAll()
	}
}

// EraseChars blanks n cells starting at the cursor without moving anything.
func (s *Screen) EraseChars(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.ClearRowRange(s.cursor.Row, s.cursor.Col, s.cursor.Col+n)
}

// DeleteChars removes n cells at the cursor, shifting the rest of the row left.
func (s *Screen) DeleteChars(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.DeleteChars(s.cursor.Row, s.cursor.Col, n)
}

// InsertBlank inserts n blank cells at the cursor, shifting the rest of the row right.
func (s *Screen) InsertBlank(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.InsertBlanks(s.cursor.Row, s.cursor.Col, n)
}

// InsertBlankLines inserts n blank rows at the cursor within the scroll region.
func (s *Screen) InsertBlankLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor.Row >= s.scrollTop && s.cursor.Row < s.scrollBottom {
		s.active.ScrollDown(s.cursor.Row, s.scrollBottom, n)
	}
}

// DeleteLines removes n rows at the cursor within the scroll region.
func (s *Screen) DeleteLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor.Row >= s.scrollTop && s.cursor.Row < s.scrollBottom {
		s.active.ScrollUp(s.cursor.Row, s.scrollBottom, n)
	}
}

// ScrollUp shifts the scroll region up n rows.
func (s *Screen) ScrollUp(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.ScrollUp(s.scrollTop, s.scrollBottom, n)
}

// ScrollDown shifts the scroll region down n rows.
func (s *Screen) ScrollDown(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.ScrollDown(s.scrollTop, s.scrollBottom, n)
}

// ReverseIndex moves the cursor up one row. If at the top of the scroll region, scrolls down instead.
func (s *Screen) ReverseIndex() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor.Row == s.scrollTop {
		s.active.ScrollDown(s.scrollTop, s.scrollBottom, 1)
	} else if s.cursor.Row > 0 {
		s.cursor.Row--
	}
}

// SetScrollingRegion sets the scroll region from 1-based, inclusive rows and homes the cursor.
func (s *Screen) SetScrollingRegion(top, bottom int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	top--
	if top < 0 {
		top = 0
	}
	if bottom <= 0 || bottom > s.rows {
		bottom = s.rows
	}
	if top >= bottom {
		return
	}

	s.scrollTop = top
	s.scrollBottom = bottom

	if s.modes&ModeOrigin != 0 {
		s.cursor.Row = s.scrollTop
	} else {
		s.cursor.Row = 0
	}
	s.cursor.Col = 0
}

// SaveCursorPosition remembers the cursor for RestoreCursorPosition.
func (s *Screen) SaveCursorPosition() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCursorLocked()
}

func (s *Screen) saveCursorLocked() {
	saved := s.cursor
	s.savedCursor = &saved
}

// RestoreCursorPosition moves the cursor back to the saved position.
func (s *Screen) RestoreCursorPosition() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreCursorLocked()
}

func (s *Screen) restoreCursorLocked() {
	if s.savedCursor == nil {
		return
	}
	s.cursor.Row = clamp(s.savedCursor.Row, 0, s.rows-1)
	s.cursor.Col = clamp(s.savedCursor.Col, 0, s.cols-1)
}

// SetTerminalCharAttribute updates the attributes used for newly printed characters.
func (s *Screen) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch attr.Attr {
	case ansicode.CharAttributeReset:
		s.template = NewCell()
	case ansicode.CharAttributeBold:
		s.template.SetFlag(CellFlagBold)
	case ansicode.CharAttributeUnderline:
		s.template.SetFlag(CellFlagUnderline)
	case ansicode.CharAttributeReverse:
		s.template.SetFlag(CellFlagReverse)
	case ansicode.CharAttributeCancelBold:
		s.template.ClearFlag(CellFlagBold)
	case ansicode.CharAttributeCancelUnderline:
		s.template.ClearFlag(CellFlagUnderline)
	case ansicode.CharAttributeCancelReverse:
		s.template.ClearFlag(CellFlagReverse)
	case ansicode.CharAttributeForeground:
		s.template.Fg = attrColor(attr, NamedColorForeground)
	case ansicode.CharAttributeBackground:
		s.template.Bg = attrColor(attr, NamedColorBackground)
	}
}

// attrColor converts an SGR color into a cell color. Without a color the
// named default is used.
func attrColor(attr ansicode.TerminalCharAttribute, def int) color.Color {
	switch {
	case attr.RGBColor != nil:
		return color.RGBA{R: attr.RGBColor.R, G: attr.RGBColor.G, B: attr.RGBColor.B, A: 255}
	case attr.IndexedColor != nil:
		return &IndexedColor{Index: int(attr.IndexedColor.Index)}
	case attr.NamedColor != nil:
		return &NamedColor{Name: int(*attr.NamedColor)}
	default:
		return &NamedColor{Name: def}
	}
}

// SetMode enables a terminal mode.
func (s *Screen) SetMode(mode ansicode.TerminalMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setModeLocked(mode, true)
}

// UnsetMode disables a terminal mode.
func (s *Screen) UnsetMode(mode ansicode.TerminalMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setModeLocked(mode, false)
}

func (s *Screen) setModeLocked(mode ansicode.TerminalMode, set bool) {
	var m ScreenMode

	switch mode {
	case ansicode.TerminalModeInsert:
		m = ModeInsert
	case ansicode.TerminalModeOrigin:
		m = ModeOrigin
		if set {
			s.cursor.Row = s.scrollTop
			s.cursor.Col = 0
		}
	case ansicode.TerminalModeLineWrap:
		m = ModeLineWrap
	case ansicode.TerminalModeLineFeedNewLine:
		m = ModeLineFeedNewLine
	case ansicode.TerminalModeReportMouseClicks:
		m = ModeReportMouseClicks
	case ansicode.TerminalModeReportCellMouseMotion:
		m = ModeReportCellMouseMotion
	case ansicode.TerminalModeReportAllMouseMotion:
		m = ModeReportAllMouseMotion
	case ansicode.TerminalModeSwapScreenAndSetRestoreCursor:
		m = ModeAlternateScreen
		if set == (s.active == s.alternate) {
			return
		}
		if set {
			s.saveCursorLocked()
			s.active = s.alternate
			s.active.ClearAll()
		} else {
			s.active = s.primary
			s.restoreCursorLocked()
		}
		s.active.dirty = true
	default:
		return
	}

	if set {
		s.modes |= m
	} else {
		s.modes &^= m
	}
}

// ResetState performs a full reset (RIS).
func (s *Screen) ResetState() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = s.primary
	s.primary.ClearAll()
	s.alternate.ClearAll()
	s.cursor = cursor{}
	s.savedCursor = nil
	s.template = NewCell()
	s.scrollTop = 0
	s.scrollBottom = s.rows
	s.modes = ModeLineWrap
}

// Decaln fills the screen with 'E' (screen alignment test).
func (s *Screen) Decaln() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			cell := NewCell()
			cell.Char = 'E'
			s.active.SetCell(row, col, cell)
		}
		s.active.SetWrapped(row, false)
	}
}

// Sequences below do not change the cell layout and are ignored.

func (s *Screen) ApplicationCommandReceived(data []byte) {}

func (s *Screen) Bell() {}

func (s *Screen) ClearTabs(mode ansicode.TabulationClearMode) {}

func (s *Screen) ClipboardLoad(clipboard byte, terminator string) {}

func (s *Screen) ClipboardStore(clipboard byte, data []byte) {}

func (s *Screen) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {}

func (s *Screen) DesktopNotification(payload *ansicode.NotificationPayload) {}

func (s *Screen) DeviceStatus(n int) {}

func (s *Screen) HorizontalTabSet() {}

func (s *Screen) IdentifyTerminal(b byte) {}

func (s *Screen) PopKeyboardMode(n int) {}

func (s *Screen) PopTitle() {}

func (s *Screen) PrivacyMessageReceived(data []byte) {}

func (s *Screen) PushKeyboardMode(mode ansicode.KeyboardMode) {}

func (s *Screen) PushTitle() {}

func (s *Screen) ReportKeyboardMode() {}

func (s *Screen) ReportModifyOtherKeys() {}

func (s *Screen) ResetColor(i int) {}

func (s *Screen) SetActiveCharset(n int) {}

func (s *Screen) SetColor(index int, c color.Color) {}

func (s *Screen) SetCursorStyle(style ansicode.CursorStyle) {}

func (s *Screen) SetDynamicColor(prefix string, index int, terminator string) {}

func (s *Screen) SetHyperlink(hyperlink *ansicode.Hyperlink) {}

func (s *Screen) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {}

func (s *Screen) SetKeypadApplicationMode() {}

func (s *Screen) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}

func (s *Screen) StartOfStringReceived(data []byte) {}

func (s *Screen) SetTitle(title string) {}

func (s *Screen) Substitute() {}

func (s *Screen) TextAreaSizeChars() {}

func (s *Screen) TextAreaSizePixels() {}

func (s *Screen) UnsetKeypadApplicationMode() {}

func (s *Screen) SetUserVar(name, value string) {}

func (s *Screen) SetWorkingDirectory(uri string) {}

func (s *Screen) CellSizePixels() {}

func (s *Screen) SixelReceived(params [][]uint16, data []byte) {}

func (s *Screen) ShellIntegrationMark(mark ansicode.ShellIntegrationMark, exitCode int) {}
