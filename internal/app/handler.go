package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/potluckapp/potluck/internal/config"
	"github.com/potluckapp/potluck/internal/ingredients"
	"github.com/potluckapp/potluck/internal/sec"
	"github.com/potluckapp/potluck/internal/storage"
	"github.com/potluckapp/potluck/internal/storage/db"
)

type handler struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    storage.Store
	sessions *sec.Sessions
}

func (h handler) register(e *echo.Echo) {
	e.Use(h.withUser)

	e.GET("/", h.home)
	e.GET("/login", h.loginPage)
	e.POST("/login", h.login)
	e.GET("/signup", h.signupPage)
	e.POST("/signup", h.signup)
	e.GET("/logout", h.logout)

	e.GET("/recipes", h.feed, h.requirePage)
	e.GET("/my_recipes", h.myRecipes, h.requirePage)
	e.GET("/add_recipe", h.addRecipePage, h.requirePage)
	e.POST("/add_recipe", h.addRecipe, h.requireMutation)
	e.GET("/recipes/:id/edit", h.editRecipePage, h.requirePage)
	e.POST("/recipes/:id/edit", h.editRecipe, h.requireMutation)
	e.POST("/recipes/:id/delete", h.deleteRecipe, h.requireMutation)
}

// withUser resolves the session cookie to a user once per request and
// attaches it to the request context. Anonymous requests pass through
// untouched; only the require* middlewares reject them.
func (h handler) withUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok, err := sec.Authenticate(c.Request().Context(), c.Request(), h.sessions, h.store)
		if err != nil {
			return h.internal(c, err)
		}
		if ok {
			ctx := sec.WithUser(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
		}
		return next(c)
	}
}

// requirePage guards page views: anonymous requests are redirected to the
// login entry point.
func (h handler) requirePage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := sec.UserFrom(c.Request().Context()); !ok {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// requireMutation guards data-mutating operations: anonymous requests get a
// 401 rather than a redirect.
func (h handler) requireMutation(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := sec.UserFrom(c.Request().Context()); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, sec.ErrUnauthenticated.Error())
		}
		return next(c)
	}
}

// Template data.

type formPage struct {
	UserName string
	CSRF     string
	Error    string
}

type homePage struct {
	UserName string
}

type recipeView struct {
	ID           uint64
	Title        string
	Image        string
	Ingredients  string
	Instructions string
	Mine         bool
}

type recipeListPage struct {
	UserName string
	CSRF     string
	Heading  string
	Recipes  []recipeView
}

type recipeFormPage struct {
	UserName     string
	CSRF         string
	Error        string
	Heading      string
	Action       string
	Title        string
	Image        string
	Ingredients  string
	Instructions string
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}

// Pages.

func (h handler) home(c echo.Context) error {
	if user, ok := sec.UserFrom(c.Request().Context()); ok {
		return c.Render(http.StatusOK, "home.html", homePage{UserName: user.Name})
	}
	return c.Render(http.StatusOK, "login.html", formPage{CSRF: csrfToken(c)})
}

func (h handler) loginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", formPage{CSRF: csrfToken(c)})
}

func (h handler) signupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", formPage{CSRF: csrfToken(c)})
}

// Credential flows.

func (h handler) signup(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	password := c.FormValue("password")
	if name == "" || password == "" {
		return h.signupFailed(c, "name and password are required")
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return h.internal(c, err)
	}

	user, err := h.store.CreateUser(c.Request().Context(), name, hash)
	switch {
	case errors.Is(err, storage.ErrAlreadyExists):
		return h.signupFailed(c, "that name is already taken")
	case errors.Is(err, storage.ErrInvalidUsername):
		return h.signupFailed(c, err.Error())
	case err != nil:
		return h.internal(c, err)
	}

	h.logger.InfoContext(c.Request().Context(), "user signed up", slog.String("name", user.Name))
	return h.startSession(c, user)
}

func (h handler) signupFailed(c echo.Context, msg string) error {
	return c.Render(http.StatusUnprocessableEntity, "signup.html", formPage{
		CSRF:  csrfToken(c),
		Error: msg,
	})
}

func (h handler) login(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	password := c.FormValue("password")

	user, err := h.store.GetUserByName(c.Request().Context(), name)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// Same response as a bad password; which factor failed must not
		// be observable.
		return h.loginFailed(c)
	case err != nil:
		return h.internal(c, err)
	}

	if err := sec.ComparePassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, sec.ErrInvalidCredentials) {
			return h.loginFailed(c)
		}
		return h.internal(c, err)
	}

	return h.startSession(c, user)
}

func (h handler) loginFailed(c echo.Context) error {
	return c.Render(http.StatusUnauthorized, "login.html", formPage{
		CSRF:  csrfToken(c),
		Error: sec.ErrInvalidCredentials.Error(),
	})
}

func (h handler) startSession(c echo.Context, user db.User) error {
	token, err := h.sessions.Create(user.ID)
	if err != nil {
		return h.internal(c, err)
	}
	c.SetCookie(sec.NewSessionCookie(token, time.Duration(h.cfg.SessionTTL), h.cfg.CookieSecure))
	return c.Render(http.StatusOK, "home.html", homePage{UserName: user.Name})
}

func (h handler) logout(c echo.Context) error {
	if cookie, err := c.Cookie(sec.CookieName); err == nil && cookie.Value != "" {
		h.sessions.Destroy(cookie.Value)
	}
	c.SetCookie(sec.ClearSessionCookie(h.cfg.CookieSecure))
	return c.Redirect(http.StatusSeeOther, "/login")
}

// Recipe pages.

func (h handler) feed(c echo.Context) error {
	user, _ := sec.UserFrom(c.Request().Context())
	recipes, err := h.store.ListRecipes(c.Request().Context())
	if err != nil {
		return h.internal(c, err)
	}
	return c.Render(http.StatusOK, "recipes.html", recipeListPage{
		UserName: user.Name,
		CSRF:     csrfToken(c),
		Heading:  "All recipes",
		Recipes:  h.recipeViews(c, recipes, user.ID),
	})
}

func (h handler) myRecipes(c echo.Context) error {
	user, _ := sec.UserFrom(c.Request().Context())
	recipes, err := h.store.ListRecipesByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return h.internal(c, err)
	}
	return c.Render(http.StatusOK, "recipes.html", recipeListPage{
		UserName: user.Name,
		CSRF:     csrfToken(c),
		Heading:  "My recipes",
		Recipes:  h.recipeViews(c, recipes, user.ID),
	})
}

func (h handler) recipeViews(c echo.Context, recipes []db.Recipe, viewer uint64) []recipeView {
	views := make([]recipeView, 0, len(recipes))
	for _, recipe := range recipes {
		list, err := recipe.IngredientList()
		if err != nil {
			h.logger.WarnContext(c.Request().Context(), "skipping recipe with bad ingredient data",
				slog.Uint64("recipe", recipe.ID),
				slog.Any("error", err),
			)
			continue
		}
		views = append(views, recipeView{
			ID:           recipe.ID,
			Title:        recipe.Title,
			Image:        recipe.Image,
			Ingredients:  ingredients.Join(list),
			Instructions: recipe.Instructions,
			Mine:         recipe.Owner == viewer,
		})
	}
	return views
}

func (h handler) addRecipePage(c echo.Context) error {
	user, _ := sec.UserFrom(c.Request().Context())
	return c.Render(http.StatusOK, "recipe_form.html", recipeFormPage{
		UserName: user.Name,
		CSRF:     csrfToken(c),
		Heading:  "Add recipe",
		Action:   "/add_recipe",
	})
}

func (h handler) addRecipe(c echo.Context) error {
	user, _ := sec.UserFrom(c.Request().Context())
	fields, ok := recipeFields(c)
	if !ok {
		return c.Render(http.StatusUnprocessableEntity, "recipe_form.html", recipeFormPage{
			UserName: user.Name,
			CSRF:     csrfToken(c),
			Error:    "a title is required",
			Heading:  "Add recipe",
			Action:   "/add_recipe",
		})
	}

	if _, err := h.store.CreateRecipe(c.Request().Context(), user.ID, fields); err != nil {
		return h.internal(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/my_recipes")
}

func (h handler) editRecipePage(c echo.Context) error {
	user, _ := sec.UserFrom(c.Request().Context())
	recipe, err := h.authorizeRecipe(c)
	if err != nil {
		return err
	}
	list, err := recipe.IngredientList()
	if err != nil {
		return h.internal(c, err)
	}
	return c.Render(http.StatusOK, "recipe_form.html", recipeFormPage{
		UserName:     user.Name,
		CSRF:         csrfToken(c),
		Heading:      "Edit recipe",
		Action:       fmt.Sprintf("/recipes/%d/edit", recipe.ID),
		Title:        recipe.Title,
		Image:        recipe.Image,
		Ingredients:  ingredients.Join(list),
		Instructions: recipe.Instructions,
	})
}

func (h handler) editRecipe(c echo.Context) error {
	user, _ := sec.UserFrom(c.Request().Context())
	recipe, err := h.authorizeRecipe(c)
	if err != nil {
		return err
	}
	fields, ok := recipeFields(c)
	if !ok {
		return c.Render(http.StatusUnprocessableEntity, "recipe_form.html", recipeFormPage{
			UserName: user.Name,
			CSRF:     csrfToken(c),
			Error:    "a title is required",
			Heading:  "Edit recipe",
			Action:   fmt.Sprintf("/recipes/%d/edit", recipe.ID),
		})
	}

	if err := h.store.UpdateRecipe(c.Request().Context(), recipe.ID, fields); err != nil {
		return h.internal(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/my_recipes")
}

func (h handler) deleteRecipe(c echo.Context) error {
	recipe, err := h.authorizeRecipe(c)
	if err != nil {
		return err
	}
	if err := h.store.DeleteRecipe(c.Request().Context(), recipe.ID); err != nil {
		return h.internal(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/my_recipes")
}

// authorizeRecipe resolves the :id route parameter and applies the ownership
// decision for the authenticated user. Edit-view, edit-submit, and delete all
// go through here; none of them reach a store write unless the decision is
// allow. Existence is checked before ownership, so probing an unknown ID
// yields 404 rather than 403.
func (h handler) authorizeRecipe(c echo.Context) (db.Recipe, error) {
	user, _ := sec.UserFrom(c.Request().Context())

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return db.Recipe{}, echo.NewHTTPError(http.StatusNotFound, "recipe not found")
	}

	recipe, err := h.store.GetRecipe(c.Request().Context(), id)
	found := err == nil
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return db.Recipe{}, h.internal(c, err)
	}

	switch sec.AuthorizeRecipe(recipe, found, user.ID) {
	case sec.NotFound:
		return db.Recipe{}, echo.NewHTTPError(http.StatusNotFound, "recipe not found")
	case sec.Forbidden:
		return db.Recipe{}, echo.NewHTTPError(http.StatusForbidden, "permission denied")
	case sec.Allow:
	}
	return recipe, nil
}

// recipeFields parses the recipe form. ok is false when the title is missing.
func recipeFields(c echo.Context) (storage.RecipeFields, bool) {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return storage.RecipeFields{}, false
	}
	return storage.RecipeFields{
		Title:        title,
		Image:        strings.TrimSpace(c.FormValue("image")),
		Ingredients:  ingredients.Parse(c.FormValue("ingredients")),
		Instructions: strings.TrimSpace(c.FormValue("instructions")),
	}, true
}

// internal logs the underlying failure and hands the client a generic
// message; store and hashing internals never reach the response.
func (h handler) internal(c echo.Context, err error) error {
	h.logger.ErrorContext(c.Request().Context(), "request failed",
		slog.String("route", c.Path()),
		slog.Any("error", err),
	)
	return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong")
}
