package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)
	s.echo.GET("/privacy-policy", s.privacyPolicy)

	// Vote API consumed by the browser extension. Only the toggle mutates
	// state; it is the only rate-limited operation.
	s.echo.POST("/vote", s.toggleVote)
	s.echo.GET("/votes", s.getVotes)
	s.echo.GET("/status/:tweetId/:userId", s.getStatus)
	s.echo.GET("/stats/user/:userId", s.getUserStats)
	s.echo.GET("/stats/global", s.getGlobalStats)
}
