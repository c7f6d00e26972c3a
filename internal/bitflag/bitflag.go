package bitflag

// Flag represents a single bitflag
type Flag uint

// Container represents a bitflag container and provides methods to simplify working with them
type Container uint

// EmptyContainer provides an empty bitflag container
const EmptyContainer Container = 0

// Has checks if the container has all the given flags set
func (cur Container) Has(flags ...Flag) bool {
	for _, flag := range flags {
		if cur&Container(flag) == 0 {
			return false
		}
	}
	return true
}

// HasAny checks if the container has at least one of the given flags set
func (cur Container) HasAny(flags ...Flag) bool {
	for _, flag := range flags {
		if cur&Container(flag) != 0 {
			return true
		}
	}
	return false
}

// With returns a new container with the given flags and the current ones set
func (cur Container) With(flags ...Flag) Container {
	for _, flag := range flags {
		cur |= Container(flag)
	}
	return cur
}

// Without returns a new container with the current flags but without the given ones set
func (cur Container) Without(flags ...Flag) Container {
	for _, flag := range flags {
		cur &= ^Container(flag)
	}
	return cur
}
