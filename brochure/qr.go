// Package brochure produces the printable material offered for download: the
// prospectus PDF and QR codes for the admission form and branch contacts.
package brochure

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/littlewonders/playlearn/content"
)

// QRCode encodes text as a size x size PNG.
func QRCode(text string, size int) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("brochure: qr: empty payload")
	}
	png, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("brochure: qr: %w", err)
	}
	return png, nil
}

var mecardEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)

// BranchCard is a MECARD contact payload for b, which phone cameras offer to
// save straight into the address book.
func BranchCard(b content.Branch, siteName string) string {
	var sb strings.Builder
	sb.WriteString("MECARD:")
	name := strings.TrimSpace(siteName + " " + b.Name)
	fmt.Fprintf(&sb, "N:%s;", mecardEscaper.Replace(name))
	for _, p := range b.Phones {
		fmt.Fprintf(&sb, "TEL:%s;", mecardEscaper.Replace(p))
	}
	if b.Email != "" {
		fmt.Fprintf(&sb, "EMAIL:%s;", mecardEscaper.Replace(b.Email))
	}
	if b.Address != "" {
		fmt.Fprintf(&sb, "ADR:%s;", mecardEscaper.Replace(b.Address))
	}
	sb.WriteString(";")
	return sb.String()
}
