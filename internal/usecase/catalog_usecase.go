package usecase

import (
	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/service"
)

// defaultCatalog is the browsable subject directory shown on the explore
// page. Static for now; tutors still declare arbitrary subject names on
// their profiles.
var defaultCatalog = []entity.CatalogEntry{
	{Icon: "📚", Title: "Mathematics", Description: "Calculus, Linear Algebra, Statistics, Trigonometry, Geometry, Discrete Mathematics, Number Theory, Real Analysis"},
	{Icon: "⚛️", Title: "Physics", Description: "Mechanics, Thermodynamics, Electromagnetism, Quantum Physics, Optics, Nuclear Physics, Relativity"},
	{Icon: "🧪", Title: "Chemistry", Description: "Organic Chemistry, Inorganic Chemistry, Physical Chemistry, Biochemistry, Analytical Chemistry, Polymers"},
	{Icon: "🧬", Title: "Biology", Description: "Molecular Biology, Genetics, Ecology, Physiology, Microbiology, Evolution, Botany, Zoology"},
	{Icon: "💻", Title: "Computer Science", Description: "Programming, Data Structures, Algorithms, Web Development, Database Systems, Machine Learning, Cybersecurity"},
	{Icon: "📝", Title: "English", Description: "Literature Analysis, Creative Writing, Grammar, Composition, Academic Writing, Public Speaking"},
	{Icon: "🏛️", Title: "History", Description: "World History, Ancient Civilizations, Modern History, Political History, Social History, Art History"},
	{Icon: "📊", Title: "Economics", Description: "Microeconomics, Macroeconomics, International Trade, Financial Economics, Development Economics, Econometrics"},
}

type CatalogUseCase struct {
	entries []entity.CatalogEntry
}

func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{entries: defaultCatalog}
}

// Search narrows the catalog by the given term. An empty term returns
// the full catalog.
func (uc *CatalogUseCase) Search(term string) []entity.CatalogEntry {
	return service.FilterCatalog(uc.entries, term)
}
