package store

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/canya/backend/internal/model"
)

// seedAdminPassword is the first-boot admin password. The hash is generated
// at seed time rather than embedded, so it cannot drift from the password.
const seedAdminPassword = "admin123"

// Seed writes default data for every collection whose backing file is absent.
// Existing files are never touched, so a redeploy keeps admin edits.
func (s *FileStore) Seed() error {
	if !s.Exists(Users) {
		users, err := defaultUsers()
		if err != nil {
			return err
		}
		if err := Write(s, Users, users); err != nil {
			return err
		}
	}
	if !s.Exists(Links) {
		if err := Write(s, Links, defaultLinks()); err != nil {
			return err
		}
	}
	if !s.Exists(Services) {
		if err := Write(s, Services, defaultServices()); err != nil {
			return err
		}
	}
	if !s.Exists(Members) {
		if err := Write(s, Members, defaultMembers()); err != nil {
			return err
		}
	}
	return nil
}

func defaultUsers() ([]model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return []model.User{
		{
			ID:           "1",
			Email:        "admin@canya.com",
			PasswordHash: string(hash),
			Name:         "Administrator",
			Role:         model.RoleAdmin,
		},
	}, nil
}

func defaultLinks() []model.Link {
	return []model.Link{
		{
			ID:          "1",
			Name:        "Greenpeace",
			URL:         "https://www.greenpeace.org",
			Description: "Global environmental organization fighting climate change",
		},
		{
			ID:          "2",
			Name:        "Black Lives Matter",
			URL:         "https://blacklivesmatter.com",
			Description: "Movement against police violence and systemic racism",
		},
	}
}

func defaultServices() []model.Service {
	return []model.Service{
		{
			ID:          "1",
			Name:        "Environmental Conservation",
			Description: "Organizations working to protect our planet and natural resources",
			Icon:        "🌍",
		},
		{
			ID:          "2",
			Name:        "Social Justice",
			Description: "Movements dedicated to creating a more equitable society",
			Icon:        "✊",
		},
	}
}

func defaultMembers() []model.Member {
	return []model.Member{
		{
			ID:    "1",
			Name:  "Sarah Johnson",
			Role:  "Founder & Director",
			Bio:   "Community advocate with 10+ years of experience in nonprofit work",
			Image: "https://via.placeholder.com/150",
		},
		{
			ID:    "2",
			Name:  "Marcus Williams",
			Role:  "Operations Lead",
			Bio:   "Passionate about connecting communities with resources",
			Image: "https://via.placeholder.com/150",
		},
		{
			ID:    "3",
			Name:  "Elena Rodriguez",
			Role:  "Partnerships Coordinator",
			Bio:   "Building bridges between service organizations and communities",
			Image: "https://via.placeholder.com/150",
		},
	}
}
