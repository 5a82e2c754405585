package domain

import types "payseal/internal/domain/types"

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint        = types.Fingerprint
	KeyRole            = types.KeyRole
	KeyOwner           = types.KeyOwner
	EnvelopeHeader     = types.EnvelopeHeader
	Envelope           = types.Envelope
	PlainEnvelope      = types.PlainEnvelope
	SensitivePayload   = types.SensitivePayload
	SignRequest        = types.SignRequest
	GatewayResponse    = types.GatewayResponse
	PaymentLinkRequest = types.PaymentLinkRequest
)

const (
	SignTypeRSA     = types.SignTypeRSA
	ProtocolVersion = types.ProtocolVersion

	RolePartnerPrivate = types.RolePartnerPrivate
	RolePartnerPublic  = types.RolePartnerPublic
	RoleGatewayPublic  = types.RoleGatewayPublic
	RoleGatewayPrivate = types.RoleGatewayPrivate

	OwnerPartner = types.OwnerPartner
	OwnerGateway = types.OwnerGateway
)
