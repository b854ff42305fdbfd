package api

import (
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
)

// loginPayload is the /auth/login response. Older deployments return the
// session token as "token", newer ones as "accessToken".
type loginPayload struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	Image        string `json:"image"`
	Token        string `json:"token"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type userPayload struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
	Phone     string `json:"phone"`
}

type productPayload struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Stock       int      `json:"stock"`
	Brand       string   `json:"brand"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
	// upstream availability label, ignored in favour of Stock
	AvailabilityStatus string `json:"availabilityStatus"`
}

type productListPayload struct {
	Products []productPayload `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

type messagePayload struct {
	Message string `json:"message"`
}

// normalizeLogin maps a login response to a User with the token under its
// canonical field. A response without any token is an AuthError.
func normalizeLogin(body []byte) (*models.User, error) {
	var p loginPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &AuthError{Message: "Malformed login response", Err: err}
	}

	token := p.Token
	if token == "" {
		token = p.AccessToken
	}
	if token == "" {
		return nil, &AuthError{Message: "No token received from server"}
	}

	return &models.User{
		ID:           p.ID,
		Username:     p.Username,
		Email:        p.Email,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Gender:       p.Gender,
		Image:        p.Image,
		Token:        token,
		RefreshToken: p.RefreshToken,
	}, nil
}

func normalizeRegistered(body []byte) (*models.RegisteredUser, error) {
	var p userPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &AuthError{Message: "Malformed registration response", Err: err}
	}
	return &models.RegisteredUser{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}, nil
}

func normalizeUser(body []byte) (*models.User, error) {
	var p userPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &AuthError{Message: "Malformed user response", Err: err}
	}
	return &models.User{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    p.Gender,
		Image:     p.Image,
		Phone:     p.Phone,
	}, nil
}

// maxRating is the top of the rating scale.
const maxRating = 5.0

// normalizeCourse maps a catalog item to a Course. Status always comes from
// stock. Price is kept non-negative and rating within 0..maxRating.
func normalizeCourse(p productPayload) models.Course {
	return models.Course{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Price:       max(p.Price, 0),
		Rating:      min(max(p.Rating, 0), maxRating),
		Status:      models.StatusFromStock(p.Stock),
		Image:       p.Thumbnail,
	}
}

func normalizeCourseList(body []byte) ([]models.Course, error) {
	var p productListPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	courses := make([]models.Course, 0, len(p.Products))
	for _, item := range p.Products {
		courses = append(courses, normalizeCourse(item))
	}
	return courses, nil
}

func normalizeCourseDetail(body []byte) (*models.CourseDetail, error) {
	var p productPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	stock := p.Stock
	if stock < 0 {
		stock = 0
	}
	return &models.CourseDetail{
		Course: normalizeCourse(p),
		Images: images,
		Stock:  stock,
		Brand:  p.Brand,
	}, nil
}

// serverMessage extracts {"message": "..."} from an error body.
func serverMessage(body []byte) string {
	var m messagePayload
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	return strings.TrimSpace(m.Message)
}
