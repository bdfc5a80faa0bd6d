package environment

// Provider supplies ambient values the ingestion pipeline records with each entry.
type Provider interface {
	// ClientAddress returns the textual client IP, empty when unknown.
	ClientAddress() string
	// CurrentActor returns the id of the acting user, if any.
	CurrentActor() (int64, bool)
}

// Static is a Provider with fixed values. A zero Actor means anonymous.
type Static struct {
	Address string
	Actor   int64
}

func (s Static) ClientAddress() string {
	return s.Address
}

func (s Static) CurrentActor() (int64, bool) {
	return s.Actor, s.Actor > 0
}

// None reports no client and no actor.
var None Provider = Static{}
