// Package ui provides the host chrome of the notedeck TUI.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ notedeck                        View: Document 1 ▾  │  Header
//	├───────────────────────────────┬─────────────────────┤
//	│ Document 1  inline · html     │ 1 Document 1 ●      │  Menu (open)
//	│                               │ 2 Document 2        │
//	│   surface                     │ 3 Document 3        │
//	│                               └─────────────────────┘
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Application title and the menu trigger. TriggerRect reports
// where the trigger was drawn so clicks can be routed to it.
//
// Menu: The document dropdown. It lists entries in collection order,
// marks the active one and hit-tests clicks with ItemAt. Its Rect plus
// the trigger form the area inside which clicks do not dismiss it.
//
// ViewerPanel: Border and title line around the content surface. The
// surface renders inside; nothing in this package styles document text.
//
// Footer: Context-aware key bindings and transient flash messages.
//
// # Styles
//
// Styles are rebuilt from the active Theme by SetTheme. The palette is the
// host's only; documents keep their own colours.
package ui
