package tifc

// ButtonTrigger selects when a button fires its action.
type ButtonTrigger uint8

const (
	TriggerOnPress ButtonTrigger = iota
	TriggerOnRelease
)

// ButtonAction couples a trigger with a callback and its datum.
type ButtonAction struct {
	Trigger ButtonTrigger
	Do      func(data any)
	Data    any
}

// ButtonStyles are the renditions a button cycles through.
type ButtonStyles struct {
	Idle    Style
	Hovered Style
	Pressed Style
	Border  BorderSet
}

// ButtonInterior is a pressable interior with a label. The pressed state
// is released when the pointer leaves, so a button never sticks.
type ButtonInterior struct {
	InteriorBase
	label   string
	action  ButtonAction
	styles  ButtonStyles
	pressed bool
	hovered bool
}

// NewButton creates a button interior.
func NewButton(layout InteriorLayoutOpts, label string, action ButtonAction, styles ButtonStyles) *ButtonInterior {
	return &ButtonInterior{
		InteriorBase: NewInteriorBase(layout),
		label:        label,
		action:       action,
		styles:       styles,
	}
}

// Pressed reports whether the button is currently held.
func (b *ButtonInterior) Pressed() bool {
	return b.pressed
}

// Render draws the button into its first grid area.
func (b *ButtonInterior) Render(d *Display) {
	if len(b.layout.areas) == 0 || !b.layout.areas[0].Visible() {
		return
	}
	area := b.layout.areas[0].Area

	style := b.styles.Idle
	switch {
	case b.pressed:
		style = b.styles.Pressed
	case b.hovered:
		style = b.styles.Hovered
	}

	d.FillArea(style, area)
	d.DrawBorder(style, b.styles.Border, area)
	d.DrawStringCentered(b.label, area, style)
}

// Enter marks the button hovered.
func (b *ButtonInterior) Enter(pos Position) {
	b.hovered = true
}

// Hover keeps the hover mark while the pointer moves inside.
func (b *ButtonInterior) Hover(pos Position) {
	b.InteriorBase.Hover(pos)
	b.hovered = true
}

// Leave clears hover and any held press.
func (b *ButtonInterior) Leave(pos Position) {
	b.hovered = false
	b.pressed = false
}

// Press latches the button and fires press-triggered actions.
func (b *ButtonInterior) Press(pos Position, btn MouseButton) {
	if btn != Mouse1 {
		return
	}
	b.pressed = true
	if b.action.Trigger == TriggerOnPress {
		b.fire()
	}
}

// Release unlatches the button and fires release-triggered actions.
func (b *ButtonInterior) Release(pos Position, btn MouseButton) {
	if btn != Mouse1 || !b.pressed {
		return
	}
	b.pressed = false
	if b.action.Trigger == TriggerOnRelease {
		b.fire()
	}
}

func (b *ButtonInterior) fire() {
	if b.action.Do != nil {
		b.action.Do(b.action.Data)
	}
}
