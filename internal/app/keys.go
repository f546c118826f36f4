package app

import (
	"github.com/gdamore/tcell/v2"
)

// handleKey applies a key press to the model.
// Returns ErrQuit if the application should exit.
func (app *Application) handleKey(ev *tcell.EventKey) error {
	m := app.model
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyLeft:
		if shift {
			m.SelectLeft()
		} else {
			m.MoveCursorLeft()
		}
	case tcell.KeyRight:
		if shift {
			m.SelectRight()
		} else {
			m.MoveCursorRight()
		}
	case tcell.KeyUp:
		if shift {
			m.SelectUp()
		} else {
			m.MoveCursorUp()
		}
	case tcell.KeyDown:
		if shift {
			m.SelectDown()
		} else {
			m.MoveCursorDown()
		}
	case tcell.KeyHome:
		m.CursorToStart()
	case tcell.KeyEnd:
		m.CursorToEnd()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		m.DeleteBefore()
	case tcell.KeyDelete:
		m.DeleteAfter()
	case tcell.KeyEnter:
		m.Insert("\n")
	case tcell.KeyTab:
		m.Insert("\t")
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			if ev.Rune() == 'v' {
				m.PasteAndRemove()
			}
			return nil
		}
		m.Insert(string(ev.Rune()))

	case tcell.KeyCtrlC:
		m.CopySelection()
	case tcell.KeyCtrlX:
		m.CutSelection()
	case tcell.KeyCtrlV:
		m.Paste()
	case tcell.KeyCtrlD:
		m.DeleteSelection()
	case tcell.KeyCtrlL:
		m.Clear()

	case tcell.KeyCtrlS:
		app.save()
	case tcell.KeyCtrlO:
		app.reload()
	case tcell.KeyCtrlQ:
		return ErrQuit

	default:
		if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF12 {
			app.runPlugin(int(ev.Key() - tcell.KeyF1))
		}
	}
	return nil
}
