package service

import (
	"github.com/google/uuid"
)

// MemberCard is the payload encoded in a member's check-in QR code.
type MemberCard struct {
	MemberID           uuid.UUID
	RegistrationNumber string
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateMemberCardQR renders the member card payload as a PNG QR code.
	GenerateMemberCardQR(card MemberCard) ([]byte, error)

	// ParseMemberCardQR decodes the text content of a scanned member card.
	ParseMemberCardQR(qrData string) (*MemberCard, error)
}
