package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// KeyRole names one of the four PEM files the process loads at startup.
type KeyRole string

const (
	RolePartnerPrivate KeyRole = "partner_private"
	RolePartnerPublic  KeyRole = "partner_public"
	RoleGatewayPublic  KeyRole = "gateway_public"
	RoleGatewayPrivate KeyRole = "gateway_private"
)

// String returns the string form of the role.
func (r KeyRole) String() string { return string(r) }

// KeyOwner names the party a key pair belongs to.
type KeyOwner string

const (
	OwnerPartner KeyOwner = "partner"
	OwnerGateway KeyOwner = "gateway"
)

// String returns the string form of the owner.
func (o KeyOwner) String() string { return string(o) }
