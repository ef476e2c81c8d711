package email

// SendWelcomeEmail sends the welcome email to a newly created user.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"UserName": name,
	}

	return c.SendEmail(
		to,
		"Welcome to the E-commerce API!",
		TemplateWelcome,
		data,
	)
}
