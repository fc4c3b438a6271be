package main

import (
	"cursohub/config"
	"cursohub/database"
	"cursohub/models"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

type seedCourse struct {
	Name          string
	Description   string
	DurationHours int
	Provider      string
	Link          string
	Categories    []string
}

var seedCategories = []string{
	"Programação",
	"Design",
	"Marketing",
	"Negócios",
	"Data Science",
	"DevOps",
}

var seedCourses = []seedCourse{
	{
		Name:          "Laravel Avançado",
		Description:   "Aprenda técnicas avançadas de desenvolvimento com Laravel, incluindo testes, performance e arquitetura.",
		DurationHours: 40,
		Provider:      "Tech Academy",
		Link:          "https://example.com/cursos/laravel-avancado",
		Categories:    []string{"Programação", "DevOps"},
	},
	{
		Name:          "React do Zero ao Avançado",
		Description:   "Domine React com hooks, context API, performance e padrões de projeto modernos.",
		DurationHours: 60,
		Provider:      "Code School",
		Link:          "https://example.com/cursos/react-avancado",
		Categories:    []string{"Programação"},
	},
	{
		Name:          "UI/UX Design Avançado",
		Description:   "Crie interfaces incríveis com foco em experiência do usuário e design thinking.",
		DurationHours: 50,
		Provider:      "Design Pro",
		Link:          "https://example.com/cursos/uiux-design",
		Categories:    []string{"Design"},
	},
	{
		Name:          "Marketing Digital Completo",
		Description:   "Estratégias de marketing digital, SEO, redes sociais e publicidade online.",
		DurationHours: 45,
		Provider:      "Marketing Hub",
		Link:          "https://example.com/cursos/marketing-digital",
		Categories:    []string{"Marketing", "Negócios"},
	},
	{
		Name:          "Gestão de Projetos Ágil",
		Description:   "Metodologias ágeis, Scrum, Kanban e ferramentas de gestão de equipes.",
		DurationHours: 30,
		Provider:      "Business Pro",
		Link:          "https://example.com/cursos/gestao-projetos",
		Categories:    []string{"Negócios"},
	},
	{
		Name:          "Python para Data Science",
		Description:   "Análise de dados com Python, pandas, numpy e visualização de dados.",
		DurationHours: 55,
		Provider:      "Data Academy",
		Link:          "https://example.com/cursos/python-data-science",
		Categories:    []string{"Data Science", "Programação"},
	},
	{
		Name:          "AWS Cloud Practitioner",
		Description:   "Fundamentos de cloud computing com AWS, serviços principais e arquiteturas.",
		DurationHours: 35,
		Provider:      "Cloud Tech",
		Link:          "https://example.com/cursos/aws-cloud",
		Categories:    []string{"DevOps"},
	},
	{
		Name:          "SEO e Growth Hacking",
		Description:   "Técnicas de otimização para buscadores e estratégias de crescimento acelerado.",
		DurationHours: 25,
		Provider:      "Marketing Hub",
		Link:          "https://example.com/cursos/seo-growth",
		Categories:    []string{"Marketing"},
	},
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Seed categories, idempotent by name
	categoriesByName := make(map[string]models.Category)
	for _, name := range seedCategories {
		var category models.Category
		if err := db.Where("name = ?", name).First(&category).Error; err != nil {
			category = models.Category{Name: name}
			if err := db.Create(&category).Error; err != nil {
				log.Fatalf("Failed to seed category %q: %v", name, err)
			}
			log.Printf("Created category %q (id=%d)", name, category.ID)
		}
		categoriesByName[name] = category
	}

	// Seed courses with their category links, idempotent by name
	inserted := 0
	skipped := 0
	for _, seed := range seedCourses {
		var existing models.Course
		if err := db.Where("name = ?", seed.Name).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		course := models.Course{
			Name:          seed.Name,
			Description:   seed.Description,
			DurationHours: seed.DurationHours,
			Provider:      seed.Provider,
			Link:          seed.Link,
		}
		for _, categoryName := range seed.Categories {
			course.Categories = append(course.Categories, categoriesByName[categoryName])
		}

		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to seed course %q: %v", seed.Name, err)
		}
		inserted++
	}

	log.Printf("Seed complete: %d courses inserted, %d already present", inserted, skipped)

	checkCourseLinks(db)
}

// checkCourseLinks reports seeded course links that do not answer a
// HEAD request. Informational only, the seed itself already happened.
func checkCourseLinks(db *gorm.DB) {
	var courses []models.Course
	if err := db.Where("link <> ''").Find(&courses).Error; err != nil {
		log.Printf("Link check skipped: %v", err)
		return
	}

	client := resty.New().SetTimeout(5 * time.Second)
	for _, course := range courses {
		resp, err := client.R().Head(course.Link)
		if err != nil {
			log.Printf("Link check failed for %q (%s): %v", course.Name, course.Link, err)
			continue
		}
		if resp.StatusCode() >= 400 {
			log.Printf("Link check: %q answered %d for %s", course.Name, resp.StatusCode(), course.Link)
		}
	}
}
