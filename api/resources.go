package api

import (
	"strings"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/util"
)

// Resource shapes returned to clients. These deliberately differ from the
// gorm models so internal columns never leak through a handler.

const dateLayout = "02-01-2006"

func statusLabel(s int) string {
	if s == 1 {
		return "active"
	}

	return "in-active"
}

type categoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type productResource struct {
	ID          uint         `json:"id"`
	ProductName string       `json:"product_name"`
	Price       float64      `json:"price"`
	Weight      float64      `json:"weight"`
	Quantity    int          `json:"quantity"`
	SvpPoints   float64      `json:"svp_points"`
	Status      string       `json:"status"`
	ImageURL    string       `json:"image_url,omitempty"`
	AddedOn     string       `json:"addedOn"`
	Category    *categoryRef `json:"category,omitempty"`
}

func newProductResource(p *model.Product) productResource {
	r := productResource{
		ID:          p.ID,
		ProductName: p.Name,
		Price:       p.Mrp,
		Weight:      p.Weight,
		Quantity:    p.Stock,
		SvpPoints:   p.SvpPoints,
		Status:      statusLabel(p.Status),
		ImageURL:    p.ImageURL,
		AddedOn:     p.CreatedAt.Format(dateLayout),
	}

	if p.Category != nil {
		r.Category = &categoryRef{
			ID:   p.Category.ID,
			Name: p.Category.Name,
		}
	}

	return r
}

func newProductResources(ps []model.Product) []productResource {
	out := make([]productResource, 0, len(ps))
	for i := range ps {
		out = append(out, newProductResource(&ps[i]))
	}

	return out
}

type categoryResource struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	AddedOn string `json:"addedOn"`
}

func newCategoryResource(c *model.ProductCategory) categoryResource {
	return categoryResource{
		ID:      c.ID,
		Name:    c.Name,
		Status:  statusLabel(c.Status),
		AddedOn: c.CreatedAt.Format(dateLayout),
	}
}

func newCategoryResources(cs []model.ProductCategory) []categoryResource {
	out := make([]categoryResource, 0, len(cs))
	for i := range cs {
		out = append(out, newCategoryResource(&cs[i]))
	}

	return out
}

type customerResource struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	MobileNo string `json:"mobile_no,omitempty"`
	Status   string `json:"status"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
	AddedOn  string `json:"addedOn"`
}

func newCustomerResource(u *model.User) customerResource {
	return customerResource{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		MobileNo: u.MobileNo,
		Status:   statusLabel(u.Status),
		Avatar:   avatarFor(u),
		Verified: u.EmailVerifiedAt != nil,
		AddedOn:  u.CreatedAt.Format(dateLayout),
	}
}

func newCustomerResources(us []model.User) []customerResource {
	out := make([]customerResource, 0, len(us))
	for i := range us {
		out = append(out, newCustomerResource(&us[i]))
	}

	return out
}

func avatarFor(u *model.User) string {
	if u.ProfileImage != "" {
		if strings.HasPrefix(u.ProfileImage, "http") {
			return u.ProfileImage
		}

		return "/storage/" + u.ProfileImage
	}

	return util.AvatarURL(u.Name, 150)
}

type customerRef struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type reviewResource struct {
	ID       uint         `json:"id"`
	Rating   int          `json:"rating"`
	Comment  string       `json:"comment"`
	AddedOn  string       `json:"addedOn"`
	Customer *customerRef `json:"customer,omitempty"`
}

func newReviewResource(r *model.Review) reviewResource {
	out := reviewResource{
		ID:      r.ID,
		Rating:  r.Rating,
		Comment: r.Comment,
		AddedOn: r.CreatedAt.Format(dateLayout),
	}

	if r.Customer != nil {
		out.Customer = &customerRef{
			ID:     r.Customer.ID,
			Name:   r.Customer.Name,
			Avatar: avatarFor(r.Customer),
		}
	}

	return out
}

func newReviewResources(rs []model.Review) []reviewResource {
	out := make([]reviewResource, 0, len(rs))
	for i := range rs {
		out = append(out, newReviewResource(&rs[i]))
	}

	return out
}
