package charts

type Dataset struct {
	Data        []float64
	Color       ColorFunc
	StrokeWidth float64
}

func (d Dataset) Len() int {
	return len(d.Data)
}

type ChartData struct {
	Labels   []string
	Datasets []Dataset
	Legend   []string
}

// Values gives the values of all the datasets, one after the other.
func (c ChartData) Values() []float64 {
	var all []float64
	for _, d := range c.Datasets {
		all = append(all, d.Data...)
	}
	return all
}

func (c ChartData) First() Dataset {
	if len(c.Datasets) == 0 {
		return Dataset{}
	}
	return c.Datasets[0]
}

func flatten(data [][]float64) []float64 {
	var all []float64
	for _, d := range data {
		all = append(all, d...)
	}
	return all
}
