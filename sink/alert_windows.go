//go:build windows

package sink

import "golang.org/x/sys/windows"

// Alert shows a blocking error dialog. Used for the failure paths that
// must reach the user even when the console itself is broken. The host
// application's control flow is unaffected once the dialog is
// dismissed.
func Alert(title, text string) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	m, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	windows.MessageBox(0, m, t, windows.MB_OK|windows.MB_ICONERROR)
}
