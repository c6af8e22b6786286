package domain

// Phase identifies which state of the profile fetch machine holds.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// ViewState is one state of the profile fetch machine. Exactly one phase
// holds at a time: User and Repositories are set together for PhaseLoaded,
// Err is set for PhaseError, and all three are nil otherwise. A user
// without its repository list is never observable.
type ViewState struct {
	Phase        Phase
	User         *User
	Repositories []Repository
	Err          *AppError
}

// Idle is the machine's initial state.
func Idle() ViewState {
	return ViewState{Phase: PhaseIdle}
}

// Loading is the state between a fetch request and its joined result.
func Loading() ViewState {
	return ViewState{Phase: PhaseLoading}
}

// Loaded holds the jointly fetched user and repository list.
func Loaded(user User, repos []Repository) ViewState {
	return ViewState{Phase: PhaseLoaded, User: &user, Repositories: repos}
}

// Errored holds the failure that terminated a fetch request.
func Errored(err *AppError) ViewState {
	return ViewState{Phase: PhaseError, Err: err}
}
