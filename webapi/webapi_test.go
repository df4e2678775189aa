package webapi_test

import (
	"encoding/json"
	"testing"

	"github.com/Nweder/fuel-friends-azure/webapi/common"
	"github.com/Nweder/fuel-friends-azure/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type WebApiTestSuite struct {
	testutils.E2ETestSuite
}

func (s *WebApiTestSuite) TestHealthz() {
	resp := s.MakeRequest("GET", "/healthz", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var body common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(fiber.StatusOK, body.Status)
	s.Equal("Fuel Friends API is running", body.Message)
}

func (s *WebApiTestSuite) TestUnknownRoute_NotFound() {
	resp := s.MakeRequest("GET", "/api/nope", "", testutils.TestPassword)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Equal("application/problem+json", resp.Header.Get("Content-Type"))

	var pd common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&pd))
	s.Equal(fiber.StatusNotFound, pd.Status)
	s.Equal("/api/nope", pd.Instance)
}

func (s *WebApiTestSuite) TestMethodNotAllowed() {
	resp := s.MakeRequest("DELETE", "/healthz", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func (s *WebApiTestSuite) TestDebugRoutes_HiddenOutsideDevelopment() {
	resp := s.MakeRequest("GET", "/debug/routes", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func TestWebApiTestSuite(t *testing.T) {
	suite.Run(t, new(WebApiTestSuite))
}
