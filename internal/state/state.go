// internal/state/state.go
package state

import (
	"go-bastion-defense/internal/interfaces"
	"go-bastion-defense/internal/ui"
	"go-bastion-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context — зависимости, общие для всех состояний клиента.
type Context struct {
	Session  interfaces.Session
	Fog      *render.Fog
	Renderer *render.BattlefieldRenderer
	Sidebar  *ui.Sidebar
}

// NewContext wires the renderers around session. fog must be the revealer
// the session was built with.
func NewContext(session interfaces.Session, fog *render.Fog) *Context {
	return &Context{
		Session:  session,
		Fog:      fog,
		Renderer: render.NewBattlefieldRenderer(),
		Sidebar:  ui.NewSidebar(),
	}
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	ctx     *Context
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{ctx: ctx}
}

// Context returns the shared dependencies.
func (sm *StateMachine) Context() *Context {
	return sm.ctx
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
