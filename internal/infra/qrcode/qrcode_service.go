package qrcode

import (
	"encoding/json"

	"gymdesk/config"
	"gymdesk/internal/domain/service"
	"gymdesk/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const memberCardType = "member_card"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// memberCardPayload is the JSON document encoded in the QR image.
type memberCardPayload struct {
	MemberID           string `json:"member_id"`
	RegistrationNumber string `json:"registration_number"`
	Type               string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	levelName := "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(levelName),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch name {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateMemberCardQR generates the check-in QR code for a member
func (s *qrcodeService) GenerateMemberCardQR(card service.MemberCard) ([]byte, error) {
	if card.MemberID == uuid.Nil {
		return nil, errors.New("member ID is required")
	}

	jsonData, err := json.Marshal(memberCardPayload{
		MemberID:           card.MemberID.String(),
		RegistrationNumber: card.RegistrationNumber,
		Type:               memberCardType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseMemberCardQR parses scanned QR code text back into a member card
func (s *qrcodeService) ParseMemberCardQR(qrData string) (*service.MemberCard, error) {
	var data memberCardPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != memberCardType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	memberID, err := uuid.Parse(data.MemberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse member ID")
	}

	return &service.MemberCard{
		MemberID:           memberID,
		RegistrationNumber: data.RegistrationNumber,
	}, nil
}
