package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ricar232/Portafolio/internal/config"
	"github.com/ricar232/Portafolio/internal/contact"
	"github.com/ricar232/Portafolio/internal/content"
	"github.com/ricar232/Portafolio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ricar232.portafolio"
	AppName = "Portafolio"

	WindowWidth  = 900
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Initialize settings and apply the persisted theme flag
	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewPortfolioTheme(settings.GetTheme()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	contactSvc := contact.NewService(contact.DefaultDelay, contact.DefaultSuccessRate)

	// Create and setup UI
	rootUI := ui.NewRootUI(myApp, myWindow, settings, content.DefaultProfile(), contactSvc)
	myWindow.SetContent(rootUI.BuildUI())

	// Initial visibility pass once the first layout settles
	go rootUI.Start()

	// Show and run
	myWindow.ShowAndRun()
}
