package el

// Dedicated constructors for the tags the generator knows by name. Any
// other tag comes through El.

func A() *Element { return El("a") }

func Button() *Element { return El("button") }

func Div() *Element { return El("div") }

func Footer() *Element { return El("footer") }

func Form() *Element { return El("form") }

func H1() *Element { return El("h1") }

func H2() *Element { return El("h2") }

func H3() *Element { return El("h3") }

func H4() *Element { return El("h4") }

func H5() *Element { return El("h5") }

func H6() *Element { return El("h6") }

func Header() *Element { return El("header") }

func Img() *Element { return El("img") }

func Input() *Element { return El("input") }

func Label() *Element { return El("label") }

func Li() *Element { return El("li") }

func Main() *Element { return El("main") }

func Nav() *Element { return El("nav") }

func P() *Element { return El("p") }

func Section() *Element { return El("section") }

func Span() *Element { return El("span") }

func Ul() *Element { return El("ul") }
