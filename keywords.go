package renamify

// DefaultJournalKeywords names journal banners that some publishers render
// larger than the article title on the first page. Matched
// case-insensitively against the largest-font text.
var DefaultJournalKeywords = []string{
	"Knowledge-Based Systems",
	"Information Sciences",
	"Reliability Engineering and System Safety",
	"Neural Networks",
	"Expert Systems with Applications",
	"Engineering Applications of Artificial Intelligence",
	"Neurocomputing",
	"Measurement",
	"Advanced Engineering Informatics",
	"ISA Transactions",
	"Computers in Industry",
	"Future Generation computer systems",
	"Pattern Recognition",
	"Information Fusion",
	"Information Processing and Management",
	"Applied Soft Computing",
	"Ocean Engineering",
	"Applied Ocean Research",
	"Robotics and Autonomous Systems",
	"Robotics and Computer-Integrated Manufacturing",
	"Journal of Ocean Engineering and Science",
	"International Journal of Mechanical Sciences",
	"Swarm and Evolutionary Computation",
	"computer methods in applied mechanics and engineering",
	"Control Engineering Practice",
	"Ocean Modelling",
	"Defence Technology",
	"Physica A",
	"Sensors",
	"remote sensing",
	"Nuclear Engineering and Design",
	"Computers Industrial Engineering &",
}
