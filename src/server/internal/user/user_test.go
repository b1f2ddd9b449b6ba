package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/medkit-app/medkit-be/src/server/internal/session"
	"github.com/medkit-app/medkit-be/src/server/internal/user/gateway"
	"github.com/medkit-app/medkit-be/src/server/internal/user/usecase"
	"github.com/medkit-app/medkit-be/src/server/testing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("User", func() {
	var (
		userGateway   usergateway.Gateway
		mailPublisher *testing.RecordingPublisher

		response *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		mailPublisher = &testing.RecordingPublisher{}
		userUsecase := userusecase.NewUsecase(testing.IdentityProvider{}, mailPublisher)
		userGateway = usergateway.NewGateway(userUsecase)
	})

	sessionCookie := func() *http.Cookie {
		for _, cookie := range response.Result().Cookies() {
			if cookie.Name == session.CookieName {
				return cookie
			}
		}

		return nil
	}

	Describe("Login", func() {
		var form url.Values

		BeforeEach(func() {
			form = url.Values{}
			form.Set("email", testing.PrimaryUser.Email)
			form.Set("password", testing.PrimaryUser.Password)
		})

		JustBeforeEach(func() {
			request := testing.RequestFactory{
				Method: "POST",
				Target: "/submit-login",
				Form:   form,
			}.MakeFake()
			response = httptest.NewRecorder()

			c := testing.PrepareEchoContext(request, response)
			err := userGateway.SubmitLogin(c)
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("With good credentials", func() {
			It("redirects to the landing page", func() {
				Expect(response.Code).To(Equal(http.StatusFound))
				Expect(response.Header().Get("Location")).To(Equal("/"))
			})

			It("sets the session cookie to the provider's token", func() {
				cookie := sessionCookie()
				Expect(cookie).NotTo(BeNil())
				Expect(cookie.Value).To(Equal(testing.TokenForUserSub(testing.PrimaryUser.Sub)))
				Expect(cookie.HttpOnly).To(BeTrue())
			})
		})

		Describe("With a malformed email", func() {
			BeforeEach(func() {
				form.Set("email", "not-an-email")
			})

			It("fails with 422 and re-renders the login form", func() {
				Expect(response.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(response.Body.String()).To(ContainSubstring("valid email"))
			})

			It("sets no session cookie", func() {
				Expect(sessionCookie()).To(BeNil())
			})
		})

		Describe("With a wrong password", func() {
			BeforeEach(func() {
				form.Set("password", "not-the-password")
			})

			It("fails with 401", func() {
				Expect(response.Code).To(Equal(http.StatusUnauthorized))
				Expect(response.Body.String()).To(ContainSubstring("Email or password was incorrect"))
			})

			It("sets no session cookie", func() {
				Expect(sessionCookie()).To(BeNil())
			})
		})

		Describe("When the provider throttles", func() {
			BeforeEach(func() {
				form.Set("email", testing.RateLimitedEmail)
			})

			It("fails with 429", func() {
				Expect(response.Code).To(Equal(http.StatusTooManyRequests))
			})
		})
	})

	Describe("Register", func() {
		var form url.Values

		BeforeEach(func() {
			form = url.Values{}
			form.Set("email", "newcomer@medkit.app")
			form.Set("password", "a-long-enough-password")
			form.Set("confirm_password", "a-long-enough-password")
		})

		JustBeforeEach(func() {
			request := testing.RequestFactory{
				Method: "POST",
				Target: "/submit-register",
				Form:   form,
			}.MakeFake()
			response = httptest.NewRecorder()

			c := testing.PrepareEchoContext(request, response)
			err := userGateway.SubmitRegister(c)
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("With a fresh account", func() {
			It("renders the login page with a confirmation", func() {
				Expect(response.Code).To(Equal(http.StatusOK))
				Expect(response.Body.String()).To(ContainSubstring("Your account has been created"))
			})

			It("enqueues the welcome mail", func() {
				messages := mailPublisher.Unload()
				Expect(messages).To(HaveLen(1))
				Expect(messages[0].Type).To(Equal("welcome_email"))

				body := map[string]string{}
				Expect(json.Unmarshal(messages[0].Body, &body)).To(Succeed())
				Expect(body["email"]).To(Equal("newcomer@medkit.app"))
			})
		})

		Describe("With mismatched passwords", func() {
			BeforeEach(func() {
				form.Set("confirm_password", "a-different-password")
			})

			It("fails with 422 and re-renders the register form", func() {
				Expect(response.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(response.Body.String()).To(ContainSubstring("do not match"))
			})

			It("enqueues nothing", func() {
				Expect(mailPublisher.Unload()).To(BeEmpty())
			})
		})

		Describe("With a password that's too short", func() {
			BeforeEach(func() {
				form.Set("password", "short")
				form.Set("confirm_password", "short")
			})

			It("fails with 422", func() {
				Expect(response.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(response.Body.String()).To(ContainSubstring("at least 8 characters"))
			})
		})

		Describe("For an email that already has an account", func() {
			BeforeEach(func() {
				form.Set("email", testing.PrimaryUser.Email)
			})

			It("fails with 409", func() {
				Expect(response.Code).To(Equal(http.StatusConflict))
				Expect(response.Body.String()).To(ContainSubstring("already exists"))
			})

			It("enqueues nothing", func() {
				Expect(mailPublisher.Unload()).To(BeEmpty())
			})
		})

		Describe("When the welcome mail queue is down", func() {
			BeforeEach(func() {
				mailPublisher.Unavailable = true
			})

			It("still registers the account", func() {
				Expect(response.Code).To(Equal(http.StatusOK))
				Expect(response.Body.String()).To(ContainSubstring("Your account has been created"))
			})
		})
	})

	Describe("Logout", func() {
		JustBeforeEach(func() {
			request := testing.RequestFactory{
				Method: "POST",
				Target: "/logout",
				Mods:   testing.RequestModifiers{testing.WithUserCred(testing.PrimaryUser)},
			}.MakeFake()
			response = httptest.NewRecorder()

			c := testing.PrepareEchoContext(request, response)
			err := userGateway.Logout(c)
			Expect(err).NotTo(HaveOccurred())
		})

		It("redirects to the login page", func() {
			Expect(response.Code).To(Equal(http.StatusSeeOther))
			Expect(response.Header().Get("Location")).To(Equal("/login"))
		})

		It("clears the session cookie", func() {
			cookie := sessionCookie()
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).To(BeEmpty())
			Expect(cookie.MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("Form pages", func() {
		It("serves the login page", func() {
			request := testing.RequestFactory{
				Method: "GET",
				Target: "/login",
			}.MakeFake()
			response = httptest.NewRecorder()

			c := testing.PrepareEchoContext(request, response)
			Expect(userGateway.LoginPage(c)).To(Succeed())
			Expect(response.Code).To(Equal(http.StatusOK))
			Expect(response.Body.String()).To(ContainSubstring("/submit-login"))
		})

		It("serves the register page", func() {
			request := testing.RequestFactory{
				Method: "GET",
				Target: "/register",
			}.MakeFake()
			response = httptest.NewRecorder()

			c := testing.PrepareEchoContext(request, response)
			Expect(userGateway.RegisterPage(c)).To(Succeed())
			Expect(response.Code).To(Equal(http.StatusOK))
			Expect(response.Body.String()).To(ContainSubstring("/submit-register"))
		})
	})
})
