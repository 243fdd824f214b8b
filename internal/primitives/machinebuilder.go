package primitives

// MachineBuilder builds a MachineConfig fluently:
//
//	cfg, err := NewMachineBuilder("player", "stopped").
//		State("stopped").On("play", "playing").
//		State("playing").On("pause", "paused").
//		Build()
type MachineBuilder struct {
	config MachineConfig
}

// NewMachineBuilder creates a new MachineBuilder. The initial state is
// registered immediately.
func NewMachineBuilder(id, initial string) *MachineBuilder {
	b := &MachineBuilder{
		config: MachineConfig{ID: id, Initial: initial},
	}
	b.addState(initial)
	return b
}

func (b *MachineBuilder) addState(id string) {
	if !b.config.HasState(id) {
		b.config.States = append(b.config.States, id)
	}
}

// State registers a state and returns a StateBuilder for its transitions.
func (b *MachineBuilder) State(id string) *StateBuilder {
	b.addState(id)
	return &StateBuilder{mb: b, id: id}
}

// Terminal registers absorbing states.
func (b *MachineBuilder) Terminal(ids ...string) *MachineBuilder {
	for _, id := range ids {
		b.addState(id)
		if !b.config.IsTerminal(id) {
			b.config.Terminal = append(b.config.Terminal, id)
		}
	}
	return b
}

// Version pins an explicit version.
func (b *MachineBuilder) Version(v string) *MachineBuilder {
	b.config.Version = v
	return b
}

// Build validates and returns the config.
func (b *MachineBuilder) Build() (MachineConfig, error) {
	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return MachineConfig{}, err
	}
	return cfg, nil
}

// MustBuild is Build for package-level definitions. It panics on error.
func (b *MachineBuilder) MustBuild() MachineConfig {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

// StateBuilder adds transitions out of one state.
type StateBuilder struct {
	mb *MachineBuilder
	id string
}

// On adds an unguarded transition.
func (sb *StateBuilder) On(event, target string) *StateBuilder {
	return sb.OnIf(event, target, "")
}

// OnIf adds a transition guarded by an expression.
func (sb *StateBuilder) OnIf(event, target, guard string) *StateBuilder {
	sb.mb.addState(target)
	sb.mb.config.Transitions = append(sb.mb.config.Transitions, TransitionConfig{
		Event:  event,
		From:   []string{sb.id},
		Target: target,
		Guard:  guard,
	})
	return sb
}

// State moves on to another state.
func (sb *StateBuilder) State(id string) *StateBuilder {
	return sb.mb.State(id)
}

// Terminal registers absorbing states.
func (sb *StateBuilder) Terminal(ids ...string) *MachineBuilder {
	return sb.mb.Terminal(ids...)
}

// Build finalizes the machine.
func (sb *StateBuilder) Build() (MachineConfig, error) {
	return sb.mb.Build()
}

// MustBuild finalizes the machine and panics on error.
func (sb *StateBuilder) MustBuild() MachineConfig {
	return sb.mb.MustBuild()
}
