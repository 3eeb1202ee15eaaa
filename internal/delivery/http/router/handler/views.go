// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the identity shape returned to the frontend. The role is the
// effective one, never the stored column.
type userView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      string    `json:"role"`
	Shop      *shopView `json:"printerProfile,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type shopView struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"businessName"`
	Description  string    `json:"description,omitempty"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Website      string    `json:"website,omitempty"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	BannerURL    string    `json:"bannerUrl,omitempty"`
	Rating       float64   `json:"rating"`
	IsVerified   bool      `json:"isVerified"`
}

type authView struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         userView `json:"user"`
}

type addressView struct {
	ID           uuid.UUID `json:"id"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	Country      string    `json:"country"`
	IsDefault    bool      `json:"isDefault"`
}

type orderView struct {
	ID                  uuid.UUID `json:"id"`
	OrderNumber         string    `json:"orderNumber"`
	PrinterID           uuid.UUID `json:"printerId"`
	ServiceID           uuid.UUID `json:"serviceId"`
	PrinterName         string    `json:"printerName,omitempty"`
	ServiceName         string    `json:"serviceName,omitempty"`
	Status              string    `json:"status"`
	PaymentStatus       string    `json:"paymentStatus"`
	TotalAmount         float64   `json:"totalAmount"`
	DeliveryAddress     string    `json:"deliveryAddress,omitempty"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type serviceView struct {
	ID            uuid.UUID  `json:"id"`
	PrinterID     uuid.UUID  `json:"printerId"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName  string     `json:"categoryName,omitempty"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	PriceMin      float64    `json:"priceMin"`
	PriceMax      float64    `json:"priceMax"`
	EstimatedDays int        `json:"estimatedDays,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
}

type categoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

type promotionView struct {
	ID                 uuid.UUID  `json:"id"`
	PrinterID          uuid.UUID  `json:"printerId"`
	ServiceID          *uuid.UUID `json:"serviceId,omitempty"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	DiscountPercentage float64    `json:"discountPercentage,omitempty"`
	DiscountAmount     float64    `json:"discountAmount,omitempty"`
	StartDate          time.Time  `json:"startDate"`
	EndDate            time.Time  `json:"endDate"`
	ImageURL           string     `json:"imageUrl,omitempty"`
	Active             bool       `json:"active"`
}

type notificationView struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toUserView(user *entity.User) userView {
	view := userView{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Phone:     user.Phone,
		AvatarURL: user.AvatarURL,
		Role:      string(user.EffectiveRole()),
		CreatedAt: user.CreatedAt,
	}
	if user.PrinterProfile != nil {
		shop := toShopView(user.PrinterProfile)
		view.Shop = &shop
	}

	return view
}

func toShopView(shop *entity.PrinterProfile) shopView {
	return shopView{
		ID:           shop.ID,
		BusinessName: shop.BusinessName,
		Description:  shop.Description,
		Address:      shop.Address,
		Phone:        shop.Phone,
		Website:      shop.Website,
		LogoURL:      shop.LogoURL,
		BannerURL:    shop.BannerURL,
		Rating:       shop.Rating,
		IsVerified:   shop.IsVerified,
	}
}

func toAuthView(accessToken, refreshToken string, user *entity.User) authView {
	return authView{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserView(user),
	}
}

func toAddressView(address *entity.Address) addressView {
	return addressView{
		ID:           address.ID,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		PostalCode:   address.PostalCode,
		Country:      address.Country,
		IsDefault:    address.IsDefault,
	}
}

func toAddressViews(addresses []*entity.Address) []addressView {
	views := make([]addressView, 0, len(addresses))
	for _, address := range addresses {
		views = append(views, toAddressView(address))
	}

	return views
}

func toOrderView(order *entity.Order) orderView {
	return orderView{
		ID:                  order.ID,
		OrderNumber:         order.OrderNumber,
		PrinterID:           order.PrinterID,
		ServiceID:           order.ServiceID,
		PrinterName:         order.PrinterName,
		ServiceName:         order.ServiceName,
		Status:              order.Status.String(),
		PaymentStatus:       string(order.PaymentStatus),
		TotalAmount:         order.TotalAmount,
		DeliveryAddress:     order.DeliveryAddress,
		SpecialInstructions: order.SpecialInstructions,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

func toServiceView(service *entity.PrinterService) serviceView {
	view := serviceView{
		ID:            service.ID,
		PrinterID:     service.PrinterID,
		CategoryName:  service.CategoryName,
		Name:          service.Name,
		Description:   service.Description,
		PriceMin:      service.PriceMin,
		PriceMax:      service.PriceMax,
		EstimatedDays: service.EstimatedDays,
		ImageURL:      service.ImageURL,
	}
	if service.CategoryID != uuid.Nil {
		categoryID := service.CategoryID
		view.CategoryID = &categoryID
	}

	return view
}

func toServiceViews(services []*entity.PrinterService) []serviceView {
	views := make([]serviceView, 0, len(services))
	for _, service := range services {
		views = append(views, toServiceView(service))
	}

	return views
}

func toCategoryViews(categories []*entity.ServiceCategory) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, categoryView{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			ImageURL:    category.ImageURL,
		})
	}

	return views
}

func toPromotionView(promotion *entity.Promotion) promotionView {
	return promotionView{
		ID:                 promotion.ID,
		PrinterID:          promotion.PrinterID,
		ServiceID:          promotion.ServiceID,
		Title:              promotion.Title,
		Description:        promotion.Description,
		DiscountPercentage: promotion.DiscountPercentage,
		DiscountAmount:     promotion.DiscountAmount,
		StartDate:          promotion.StartDate,
		EndDate:            promotion.EndDate,
		ImageURL:           promotion.ImageURL,
		Active:             promotion.Active(time.Now()),
	}
}

func toPromotionViews(promotions []*entity.Promotion) []promotionView {
	views := make([]promotionView, 0, len(promotions))
	for _, promotion := range promotions {
		views = append(views, toPromotionView(promotion))
	}

	return views
}

func toNotificationViews(notifications []*entity.Notification) []notificationView {
	views := make([]notificationView, 0, len(notifications))
	for _, notification := range notifications {
		views = append(views, notificationView{
			ID:        notification.ID,
			Type:      string(notification.Type),
			Title:     notification.Title,
			Message:   notification.Message,
			Data:      notification.Data,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt,
		})
	}

	return views
}
