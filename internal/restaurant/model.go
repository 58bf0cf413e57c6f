package restaurant

import "aufburger/internal/receipt"

type WorkingHours struct {
	Days  string `json:"day"`
	Hours string `json:"hours"`
}

type SocialLink struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	URL    string `json:"url"`
}

// Profile is the public face of the restaurant: the about page and the
// receipt header both read from it.
type Profile struct {
	Name             string         `json:"name"`
	ShortDescription string         `json:"short_description"`
	AddressLines     []string       `json:"address_lines"`
	Phone            string         `json:"phone"`
	Email            string         `json:"email"`
	WorkingHours     []WorkingHours `json:"working_hours"`
	KitchenNote      string         `json:"kitchen_note"`
	Social           []SocialLink   `json:"social"`
}

func DefaultProfile() Profile {
	return Profile{
		Name:             "Auf Burger",
		ShortDescription: "Premium burgers crafted with passion since 2024",
		AddressLines:     []string{"123 Burger Street", "Downtown District", "City, State 12345"},
		Phone:            "(555) 123-BURG",
		Email:            "hello@aufburger.com",
		WorkingHours: []WorkingHours{
			{Days: "Monday - Thursday", Hours: "11:00 AM - 10:00 PM"},
			{Days: "Friday - Saturday", Hours: "11:00 AM - 11:00 PM"},
			{Days: "Sunday", Hours: "12:00 PM - 9:00 PM"},
		},
		KitchenNote: "Kitchen closes 30 minutes before closing time",
		Social: []SocialLink{
			{Name: "Instagram", Handle: "@aufburger", URL: "#"},
			{Name: "Facebook", Handle: "Auf Burger Official", URL: "#"},
			{Name: "Twitter", Handle: "@aufburger", URL: "#"},
		},
	}
}

// ReceiptHeader is the short form printed at the top of a receipt.
func (p Profile) ReceiptHeader() receipt.Header {
	address := ""
	if len(p.AddressLines) > 0 {
		address = p.AddressLines[0]
	}
	if len(p.AddressLines) > 1 {
		address += ", " + p.AddressLines[1]
	}

	return receipt.Header{
		StoreName: p.Name,
		Address:   address,
		Phone:     p.Phone,
	}
}
