package email

func (c *Client) SendWelcomeEmail(to, nickName string) error {
	return c.SendEmail(
		to,
		"코어코드에 오신 것을 환영합니다!",
		TemplateWelcome,
		map[string]string{"NickName": nickName},
	)
}
